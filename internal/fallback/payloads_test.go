package fallback

import (
	"strings"
	"testing"
)

func TestESIMListIsStable(t *testing.T) {
	list := ESIMList()
	if len(list) != 3 {
		t.Fatalf("len = %d, want 3", len(list))
	}
	if list[0].SubscriberID != "SUB001" {
		t.Errorf("first subscriber = %q, want SUB001", list[0].SubscriberID)
	}
	if list[2].Status != "SUSPENDED" {
		t.Errorf("SUB003 status = %q, want SUSPENDED", list[2].Status)
	}
}

func TestDetailDerivesSuffixes(t *testing.T) {
	d := Detail("SUB001")
	if d.SubscriberID != "SUB001" {
		t.Errorf("subscriberId = %q", d.SubscriberID)
	}
	if d.PhoneNumber != "+1555000001" {
		t.Errorf("phoneNumber = %q, want +1555000001", d.PhoneNumber)
	}
	if !strings.HasSuffix(d.ICCID, "B001") {
		t.Errorf("iccid = %q, want B001 suffix", d.ICCID)
	}
	if d.Plan.Name != "Global Data Plan" {
		t.Errorf("plan name = %q", d.Plan.Name)
	}
}

func TestDetailShortID(t *testing.T) {
	d := Detail("X")
	if d.PhoneNumber != "+1555000X" {
		t.Errorf("phoneNumber = %q, short id must be used whole", d.PhoneNumber)
	}
}

func TestLocationPicksKnownCity(t *testing.T) {
	loc := Location("SUB002")
	if loc.SubscriberID != "SUB002" {
		t.Errorf("subscriberId = %q", loc.SubscriberID)
	}
	found := false
	for _, c := range cities {
		if c == loc.Location {
			found = true
		}
	}
	if !found {
		t.Errorf("location %+v not in the fixed city set", loc.Location)
	}
	if !strings.HasPrefix(loc.CellTower, "TOWER_") {
		t.Errorf("cellTower = %q", loc.CellTower)
	}
	if loc.Accuracy != "50m" {
		t.Errorf("accuracy = %q", loc.Accuracy)
	}
}

func TestUsageEchoesPeriod(t *testing.T) {
	u := Usage("SUB001", "2025-06-01", "2025-07-01")
	if u.Period.StartDate != "2025-06-01" || u.Period.EndDate != "2025-07-01" {
		t.Errorf("period = %+v", u.Period)
	}
	if len(u.DailyBreakdown) != 1 {
		t.Errorf("dailyBreakdown len = %d, want 1", len(u.DailyBreakdown))
	}
	if u.CallStats.TotalMinutes < 50 || u.CallStats.TotalMinutes > 500 {
		t.Errorf("totalMinutes = %d out of range", u.CallStats.TotalMinutes)
	}
	if !strings.HasSuffix(u.DataUsage.Total, " GB") {
		t.Errorf("dataUsage total = %q", u.DataUsage.Total)
	}
}

func TestUsageDefaultsPeriod(t *testing.T) {
	u := Usage("SUB001", "", "")
	if u.Period.StartDate != "2025-06-01" || u.Period.EndDate != "2025-07-01" {
		t.Errorf("default period = %+v", u.Period)
	}
}

func TestCreditIsFixed(t *testing.T) {
	c := Credit()
	if c.AccountID != "ACC123456" {
		t.Errorf("accountId = %q", c.AccountID)
	}
	if c.Balance.Amount != 847.50 || c.Balance.Currency != "USD" {
		t.Errorf("balance = %+v", c.Balance)
	}
	if !c.Alerts.NotificationsEnabled {
		t.Error("notificationsEnabled should be true")
	}
}

func TestActionAcks(t *testing.T) {
	a := ActivateAck("SUB001")
	if a.Status != "activated" {
		t.Errorf("status = %q", a.Status)
	}
	if a.Message != "ESIM SUB001 activation simulated (no API access)" {
		t.Errorf("message = %q", a.Message)
	}

	s := SuspendAck("SUB001")
	if s.Status != "suspended" {
		t.Errorf("status = %q", s.Status)
	}
	if s.Message != "ESIM SUB001 suspension simulated (no API access)" {
		t.Errorf("message = %q", s.Message)
	}
}
