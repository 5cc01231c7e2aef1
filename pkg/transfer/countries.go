package transfer

// Country is a destination a transfer can be sent to.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Countries lists the supported destinations.
var Countries = []Country{
	{Code: "US", Name: "Estados Unidos", Flag: "🇺🇸"},
	{Code: "ES", Name: "España", Flag: "🇪🇸"},
	{Code: "GB", Name: "Reino Unido", Flag: "🇬🇧"},
	{Code: "FR", Name: "Francia", Flag: "🇫🇷"},
	{Code: "DE", Name: "Alemania", Flag: "🇩🇪"},
	{Code: "IT", Name: "Italia", Flag: "🇮🇹"},
	{Code: "CA", Name: "Canadá", Flag: "🇨🇦"},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺"},
	{Code: "JP", Name: "Japón", Flag: "🇯🇵"},
	{Code: "BR", Name: "Brasil", Flag: "🇧🇷"},
}

// unknownFlag is shown for destinations outside Countries.
const unknownFlag = "🌍"

// FlagFor returns the flag of the country with the given code.
func FlagFor(code string) string {
	for _, c := range Countries {
		if c.Code == code {
			return c.Flag
		}
	}
	return unknownFlag
}
