package analysis

import "testing"

func TestFullScore(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		expected int
	}{
		{
			name:     "empty resume gets the neutral readability share",
			signals:  Signals{SectionsTotal: 7, Readability: 50},
			expected: 13,
		},
		{
			name: "typical mid-range resume",
			signals: Signals{
				WordCount:       400,
				ActionVerbCount: 8,
				SectionsPresent: 5,
				SectionsTotal:   7,
				TotalSkills:     10,
				Readability:     60,
			},
			expected: 43,
		},
		{
			name: "extreme verb density clamps at 100",
			signals: Signals{
				WordCount:       10,
				ActionVerbCount: 10,
				SectionsTotal:   7,
			},
			expected: 100,
		},
		{
			name: "skill component saturates at 100 before weighting",
			signals: Signals{
				WordCount:     500,
				SectionsTotal: 7,
				TotalSkills:   80,
			},
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fullScore(tt.signals); got != tt.expected {
				t.Errorf("fullScore = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLiveScore(t *testing.T) {
	tests := []struct {
		name     string
		signals  Signals
		expected int
	}{
		{
			name:     "empty input",
			signals:  Signals{SectionsTotal: 5},
			expected: 0,
		},
		{
			name: "everything maxed",
			signals: Signals{
				WordCount:       200,
				ActionVerbCount: 6,
				SectionsPresent: 5,
				SectionsTotal:   5,
				TotalSkills:     5,
			},
			expected: 100,
		},
		{
			name:     "length component truncates not rounds",
			signals:  Signals{WordCount: 601, SectionsTotal: 5},
			expected: 19,
		},
		{
			name:     "length peaks at 600 words",
			signals:  Signals{WordCount: 600, SectionsTotal: 5},
			expected: 20,
		},
		{
			name:     "very long text keeps the length floor",
			signals:  Signals{WordCount: 1400, SectionsTotal: 5},
			expected: 5,
		},
		{
			name: "action component caps at 30",
			signals: Signals{
				WordCount:       10,
				ActionVerbCount: 50,
				SectionsTotal:   5,
			},
			expected: 31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := liveScore(tt.signals); got != tt.expected {
				t.Errorf("liveScore = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLiveScoreMonotonicInVerbs(t *testing.T) {
	base := Signals{WordCount: 300, SectionsPresent: 3, SectionsTotal: 5, TotalSkills: 2}

	previous := -1
	for verbs := 0; verbs <= 8; verbs++ {
		s := base
		s.ActionVerbCount = verbs
		got := liveScore(s)
		if got < previous {
			t.Fatalf("score dropped from %d to %d when verb count rose to %d", previous, got, verbs)
		}
		previous = got
	}
}
