package usecase

// SnoozeOption é um preset de adiamento oferecido pela interface.
type SnoozeOption struct {
	Label   string  `json:"label"`
	Minutes float64 `json:"minutes"`
}

var SnoozeOptions = []SnoozeOption{
	{Label: "15 minutos", Minutes: 15},
	{Label: "30 minutos", Minutes: 30},
	{Label: "1 hora", Minutes: 60},
	{Label: "2 horas", Minutes: 120},
	{Label: "4 horas", Minutes: 240},
	{Label: "1 dia", Minutes: 1440},
}
