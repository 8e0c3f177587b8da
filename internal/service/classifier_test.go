package service

import (
	"testing"

	"sitewatch/internal/models"
)

func TestClassifyMessage_Taxonomy(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    string
	}{
		{"access status", "Access status changed to LOCKED", models.AlertAccessStatusChange},
		{"vibration", "Vibration detected on panel", models.AlertVibration},
		{"critical combo", "ALERT: Access Denied at gate", models.AlertCritical},
		{"door", "Door opened at front gate", models.AlertDoor},
		{"default", "routine heartbeat", models.AlertGeneral},
		{"empty", "", models.AlertGeneral},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyMessage(tc.message); got != tc.want {
				t.Fatalf("ClassifyMessage(%q) = %q, want %q", tc.message, got, tc.want)
			}
		})
	}
}

func TestClassifyMessage_EarlierRuleWins(t *testing.T) {
	// Rules are substring tests; when two match, order decides.
	got := ClassifyMessage("Vibration detected then Door opened")
	if got != models.AlertVibration {
		t.Fatalf("expected vibration rule to win, got %q", got)
	}
}

func TestClassifyMessage_CriticalNeedsBothSubstrings(t *testing.T) {
	if got := ClassifyMessage("ALERT: Access Denied"); got != models.AlertCritical {
		t.Fatalf("expected critical alert, got %q", got)
	}
	// "ALERT:" alone does not satisfy the critical rule.
	if got := ClassifyMessage("ALERT: something odd"); got != models.AlertGeneral {
		t.Fatalf("expected general alert, got %q", got)
	}
}
