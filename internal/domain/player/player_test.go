package player

import "testing"

func TestDeriveRole(t *testing.T) {
	cases := []struct {
		name                        string
		wicketkeeper, batsman, bowler bool
		want                        Role
	}{
		{"wicketkeeper batsman", true, true, false, RoleWicketkeeperBatsman},
		{"wicketkeeper batsman bowler", true, true, true, RoleWicketkeeperBatsman},
		{"wicketkeeper only", true, false, false, RoleWicketkeeper},
		{"wicketkeeper bowler", true, false, true, RoleWicketkeeper},
		{"allrounder", false, true, true, RoleAllrounder},
		{"batsman only", false, true, false, RoleBatsman},
		{"bowler only", false, false, true, RoleBowler},
		{"no flags defaults to batsman", false, false, false, RoleBatsman},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveRole(tc.wicketkeeper, tc.batsman, tc.bowler)
			if got != tc.want {
				t.Fatalf("DeriveRole(%t,%t,%t) = %s, want %s",
					tc.wicketkeeper, tc.batsman, tc.bowler, got, tc.want)
			}
		})
	}
}
