package constvars

const (
	RegexSlotTimeHHMM  = `^([01]\d|2[0-3]):([0-5]\d)$`
	RegexPhoneTenDigit = `^\d{10}$`
)
