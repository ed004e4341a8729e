package model

// Settings is the singleton store configuration record.
type Settings struct {
	StoreName           string `json:"storeName"`
	Tagline             string `json:"tagline"`
	Description         string `json:"description"`
	Whatsapp            string `json:"whatsapp"`
	Instagram           string `json:"instagram"`
	DeliveryDays        string `json:"deliveryDays"`
	GuaranteeMonths     int    `json:"guaranteeMonths"`
	CashDiscountEnabled bool   `json:"cashDiscountEnabled"`
}

// DefaultSettings returns the hardcoded defaults. A settings save always
// starts from these values, so fields missing from the payload revert to
// the defaults rather than to the previously saved values.
func DefaultSettings() Settings {
	return Settings{
		StoreName:           "élite space",
		Tagline:             "Твоя идеальная техника здесь",
		Description:         "Apple, Garmin, DJI, Canon, WHOOP и другие топовые бренды. Гарантия 12 месяцев.",
		Whatsapp:            "77768880636",
		Instagram:           "elite.space.kz",
		DeliveryDays:        "1–3",
		GuaranteeMonths:     12,
		CashDiscountEnabled: true,
	}
}
