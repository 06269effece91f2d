package difficulty

import "testing"

func TestNextLevel(t *testing.T) {
	cases := []struct {
		name       string
		accuracy   float64
		current    Level
		struggling bool
		want       Level
	}{
		{"easy promotes on strong play", 0.85, Easy, false, Medium},
		{"easy promotes at the boundary", 0.80, Easy, false, Medium},
		{"easy holds below the boundary", 0.79, Easy, false, Easy},
		{"easy never demotes", 0.0, Easy, true, Easy},

		{"medium promotes on strong play", 0.75, Medium, false, Hard},
		{"medium promotes at the boundary", 0.70, Medium, false, Hard},
		{"medium demotes on weak play", 0.25, Medium, false, Easy},
		{"medium holds at the demotion boundary", 0.30, Medium, false, Medium},
		{"medium demotes earlier in a slump", 0.35, Medium, true, Easy},
		{"medium slump band is exclusive", 0.40, Medium, true, Medium},
		{"medium holds in the middle", 0.50, Medium, false, Medium},

		{"hard never promotes", 0.99, Hard, false, Hard},
		{"hard holds above the floor", 0.60, Hard, false, Hard},
		{"hard demotes on weak play", 0.50, Hard, false, Medium},
		{"hard holds at the demotion boundary", 0.55, Hard, false, Hard},
		{"hard demotes earlier in a slump", 0.60, Hard, true, Medium},
		{"hard slump demotion from golden case", 0.50, Hard, true, Medium},
		{"hard slump band is exclusive", 0.65, Hard, true, Hard},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := AggregateStats{Accuracy: tc.accuracy}
			got := nextLevel(agg, tc.current, tc.struggling)
			if got != tc.want {
				t.Errorf("nextLevel(acc=%v, %v, struggling=%v) = %v, want %v",
					tc.accuracy, tc.current, tc.struggling, got, tc.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if Easy.String() != "EASY" || Medium.String() != "MEDIUM" || Hard.String() != "HARD" {
		t.Errorf("Level names = %s/%s/%s, want EASY/MEDIUM/HARD", Easy, Medium, Hard)
	}
	if Level(42).String() != "UNKNOWN" {
		t.Errorf("out-of-range level String() = %s, want UNKNOWN", Level(42))
	}
}
