// Package fallback produces the canned payloads served when the provider
// call fails. Field names and fixed values are part of the dashboard's wire
// contract and must not drift.
package fallback

import (
	"fmt"
	"math/rand"
)

// ESIM is one row of the eSIM list.
type ESIM struct {
	SubscriberID  string `json:"subscriberId"`
	PhoneNumber   string `json:"phoneNumber"`
	Status        string `json:"status"`
	ICCID         string `json:"iccid"`
	IMSI          string `json:"imsi"`
	DataUsage     string `json:"dataUsage"`
	Country       string `json:"country"`
	Network       string `json:"network"`
	ActivatedDate string `json:"activatedDate"`
	ExpiryDate    string `json:"expiryDate"`
}

// ESIMList returns the demo subscriber roster.
func ESIMList() []ESIM {
	return []ESIM{
		{
			SubscriberID:  "SUB001",
			PhoneNumber:   "+1234567890",
			Status:        "ACTIVE",
			ICCID:         "89012345678901234567",
			IMSI:          "310123456789012",
			DataUsage:     "2.5 GB",
			Country:       "United States",
			Network:       "T-Mobile",
			ActivatedDate: "2025-01-15",
			ExpiryDate:    "2025-07-15",
		},
		{
			SubscriberID:  "SUB002",
			PhoneNumber:   "+447123456789",
			Status:        "ACTIVE",
			ICCID:         "89012345678901234568",
			IMSI:          "234123456789013",
			DataUsage:     "1.2 GB",
			Country:       "United Kingdom",
			Network:       "EE",
			ActivatedDate: "2025-02-01",
			ExpiryDate:    "2025-08-01",
		},
		{
			SubscriberID:  "SUB003",
			PhoneNumber:   "+33612345678",
			Status:        "SUSPENDED",
			ICCID:         "89012345678901234569",
			IMSI:          "208123456789014",
			DataUsage:     "5.0 GB",
			Country:       "France",
			Network:       "Orange",
			ActivatedDate: "2025-01-20",
			ExpiryDate:    "2025-07-20",
		},
	}
}

// Plan describes the subscriber's data plan in the detail payload.
type Plan struct {
	Name      string   `json:"name"`
	DataLimit string   `json:"dataLimit"`
	Speed     string   `json:"speed"`
	Countries []string `json:"countries"`
}

// Device describes the last seen device in the detail payload.
type Device struct {
	Type     string `json:"type"`
	OS       string `json:"os"`
	LastSeen string `json:"lastSeen"`
}

// ESIMDetail is the per-subscriber detail payload.
type ESIMDetail struct {
	SubscriberID string `json:"subscriberId"`
	PhoneNumber  string `json:"phoneNumber"`
	Status       string `json:"status"`
	ICCID        string `json:"iccid"`
	IMSI         string `json:"imsi"`
	Plan         Plan   `json:"plan"`
	Device       Device `json:"device"`
}

// Detail derives a plausible detail payload from the subscriber id.
func Detail(subscriberID string) ESIMDetail {
	return ESIMDetail{
		SubscriberID: subscriberID,
		PhoneNumber:  "+1555000" + suffix(subscriberID, 3),
		Status:       "ACTIVE",
		ICCID:        "8901234567890123" + suffix(subscriberID, 4),
		IMSI:         "31012345678" + suffix(subscriberID, 4),
		Plan: Plan{
			Name:      "Global Data Plan",
			DataLimit: "10 GB",
			Speed:     "4G/LTE",
			Countries: []string{"US", "CA", "UK", "FR", "DE"},
		},
		Device: Device{
			Type:     "smartphone",
			OS:       "Android",
			LastSeen: "2025-07-01T10:30:00Z",
		},
	}
}

// Coordinates is one city the mock device may report from.
type Coordinates struct {
	City    string  `json:"city"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// LocationInfo is the device location payload.
type LocationInfo struct {
	SubscriberID string      `json:"subscriberId"`
	Location     Coordinates `json:"location"`
	Accuracy     string      `json:"accuracy"`
	LastUpdate   string      `json:"lastUpdate"`
	CellTower    string      `json:"cellTower"`
}

var cities = []Coordinates{
	{City: "New York", Country: "US", Lat: 40.7128, Lng: -74.0060},
	{City: "London", Country: "UK", Lat: 51.5074, Lng: -0.1278},
	{City: "Paris", Country: "FR", Lat: 48.8566, Lng: 2.3522},
	{City: "Tokyo", Country: "JP", Lat: 35.6762, Lng: 139.6503},
}

// Location picks a city at random and synthesizes a tower id.
func Location(subscriberID string) LocationInfo {
	return LocationInfo{
		SubscriberID: subscriberID,
		Location:     cities[rand.Intn(len(cities))],
		Accuracy:     "50m",
		LastUpdate:   "2025-07-01T10:30:00Z",
		CellTower:    fmt.Sprintf("TOWER_%d", 1000+rand.Intn(9000)),
	}
}

// Period bounds a usage report.
type Period struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// DataUsage summarizes transferred volume.
type DataUsage struct {
	Total    string `json:"total"`
	Upload   string `json:"upload"`
	Download string `json:"download"`
}

// CallStats summarizes voice activity.
type CallStats struct {
	TotalMinutes int `json:"totalMinutes"`
	Incoming     int `json:"incoming"`
	Outgoing     int `json:"outgoing"`
}

// SMSStats summarizes messaging activity.
type SMSStats struct {
	TotalSMS int `json:"totalSms"`
	Sent     int `json:"sent"`
	Received int `json:"received"`
}

// DailyUsage is one entry of the daily breakdown.
type DailyUsage struct {
	Date      string `json:"date"`
	DataUsage string `json:"dataUsage"`
	Calls     int    `json:"calls"`
	SMS       int    `json:"sms"`
}

// UsageReport is the usage statistics payload.
type UsageReport struct {
	SubscriberID   string       `json:"subscriberId"`
	Period         Period       `json:"period"`
	DataUsage      DataUsage    `json:"dataUsage"`
	CallStats      CallStats    `json:"callStats"`
	SMSStats       SMSStats     `json:"smsStats"`
	DailyBreakdown []DailyUsage `json:"dailyBreakdown"`
}

// Usage synthesizes a usage report for the requested period. The breakdown
// holds a single day regardless of the range, matching the dashboard's
// long-standing demo payload.
func Usage(subscriberID, startDate, endDate string) UsageReport {
	if startDate == "" {
		startDate = "2025-06-01"
	}
	if endDate == "" {
		endDate = "2025-07-01"
	}
	return UsageReport{
		SubscriberID: subscriberID,
		Period:       Period{StartDate: startDate, EndDate: endDate},
		DataUsage: DataUsage{
			Total:    gigabytes(1, 8),
			Upload:   gigabytes(0.1, 1),
			Download: gigabytes(0.9, 7),
		},
		CallStats: CallStats{
			TotalMinutes: randBetween(50, 500),
			Incoming:     randBetween(20, 250),
			Outgoing:     randBetween(20, 250),
		},
		SMSStats: SMSStats{
			TotalSMS: randBetween(10, 100),
			Sent:     randBetween(5, 50),
			Received: randBetween(5, 50),
		},
		DailyBreakdown: []DailyUsage{
			{
				Date:      "2025-06-30",
				DataUsage: gigabytes(0.1, 0.5),
				Calls:     randBetween(0, 10),
				SMS:       randBetween(0, 5),
			},
		},
	}
}

// Money is an amount with currency.
type Money struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// TopUp records the most recent balance top-up.
type TopUp struct {
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

// MonthlySpend tracks current and projected spend.
type MonthlySpend struct {
	Current   float64 `json:"current"`
	Projected float64 `json:"projected"`
}

// Alerts holds balance alert settings.
type Alerts struct {
	LowBalanceThreshold  float64 `json:"lowBalanceThreshold"`
	NotificationsEnabled bool    `json:"notificationsEnabled"`
}

// CreditInfo is the account balance payload.
type CreditInfo struct {
	AccountID    string       `json:"accountId"`
	Balance      Money        `json:"balance"`
	LastTopUp    TopUp        `json:"lastTopUp"`
	MonthlySpend MonthlySpend `json:"monthlySpend"`
	Alerts       Alerts       `json:"alerts"`
}

// Credit returns the fixed demo balance payload.
func Credit() CreditInfo {
	return CreditInfo{
		AccountID:    "ACC123456",
		Balance:      Money{Amount: 847.50, Currency: "USD"},
		LastTopUp:    TopUp{Amount: 500.00, Date: "2025-06-15T09:00:00Z"},
		MonthlySpend: MonthlySpend{Current: 152.50, Projected: 305.00},
		Alerts:       Alerts{LowBalanceThreshold: 100.00, NotificationsEnabled: true},
	}
}

// ActionAck is the simulated activation/suspension acknowledgement.
type ActionAck struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// ActivateAck reports a simulated activation.
func ActivateAck(subscriberID string) ActionAck {
	return ActionAck{
		Message: fmt.Sprintf("ESIM %s activation simulated (no API access)", subscriberID),
		Status:  "activated",
	}
}

// SuspendAck reports a simulated suspension.
func SuspendAck(subscriberID string) ActionAck {
	return ActionAck{
		Message: fmt.Sprintf("ESIM %s suspension simulated (no API access)", subscriberID),
		Status:  "suspended",
	}
}

// suffix returns the last n characters of s, or all of s when shorter.
func suffix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

func gigabytes(min, max float64) string {
	return fmt.Sprintf("%.2f GB", min+rand.Float64()*(max-min))
}

func randBetween(min, max int) int {
	return min + rand.Intn(max-min+1)
}
