package tournament

import (
	"fmt"
	"time"

	"github.com/nikunj436/cricketAuction/internal/domain/auction"
	"github.com/shopspring/decimal"
)

// Category tags the kind of competition a tournament belongs to.
type Category string

const (
	CategoryCollege    Category = "college"
	CategoryCommunity  Category = "community"
	CategoryDistrict   Category = "district"
	CategoryNational   Category = "national"
	CategorySchool     Category = "school"
	CategorySeries     Category = "series"
	CategoryStateLevel Category = "state_level"
	CategoryTaluka     Category = "taluka"
	CategoryVillage    Category = "village"
	CategoryUniversity Category = "university"
	CategoryOther      Category = "other"
)

var AllCategories = map[Category]struct{}{
	CategoryCollege:    {},
	CategoryCommunity:  {},
	CategoryDistrict:   {},
	CategoryNational:   {},
	CategorySchool:     {},
	CategorySeries:     {},
	CategoryStateLevel: {},
	CategoryTaluka:     {},
	CategoryVillage:    {},
	CategoryUniversity: {},
	CategoryOther:      {},
}

// Tournament groups seasons under one organizer.
type Tournament struct {
	ID          string
	Name        string
	Description string
	LogoURL     string
	Category    Category
	OrganizerID string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Tournament) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("tournament id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("tournament name is required")
	}
	if t.OrganizerID == "" {
		return fmt.Errorf("tournament organizer id is required")
	}
	if _, ok := AllCategories[t.Category]; !ok {
		return fmt.Errorf("invalid tournament category: %s", t.Category)
	}

	return nil
}

// Season owns the auction for one edition of a tournament. The three
// configuration fields become immutable the moment the auction starts.
type Season struct {
	ID               string
	TournamentID     string
	Name             string
	Year             int
	OrganizerID      string
	RegistrationOpen bool
	Active           bool

	BasePrice         decimal.Decimal
	MaxPlayersPerTeam int
	BudgetPerTeam     decimal.Decimal
	Configured        bool
	AuctionStarted    bool
	AuctionMode       auction.Mode
	CurrentRound      int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}
	if s.TournamentID == "" {
		return fmt.Errorf("season tournament id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("season name is required")
	}
	if s.Year < 1900 {
		return fmt.Errorf("season year is invalid: %d", s.Year)
	}
	if s.OrganizerID == "" {
		return fmt.Errorf("season organizer id is required")
	}
	if s.CurrentRound < 1 {
		return fmt.Errorf("auction round must be positive")
	}

	return nil
}

// ValidateAuctionConfig checks the three auction knobs together; all of
// them must be set before the auction can be marked configured.
func (s Season) ValidateAuctionConfig() error {
	if !s.BasePrice.IsPositive() {
		return fmt.Errorf("base price must be positive")
	}
	if s.MaxPlayersPerTeam < 1 {
		return fmt.Errorf("max players per team must be at least 1")
	}
	if !s.BudgetPerTeam.IsPositive() {
		return fmt.Errorf("budget per team must be positive")
	}
	if minBudget := s.BasePrice.Mul(decimal.NewFromInt(int64(s.MaxPlayersPerTeam))); s.BudgetPerTeam.LessThan(minBudget) {
		return fmt.Errorf("budget per team must cover a full roster at base price (%s)", minBudget)
	}

	return nil
}
