package constants

const (
	DAY_FRIDAY   = "friday"
	DAY_SATURDAY = "saturday"

	TYPE_BOOTH  = "booth"
	TYPE_BISTRO = "bistro"

	PIX_KEY = "34293016000151"

	SYSTEM_INSTRUCTION = "Você é o concierge virtual da Black Night, um lounge de luxo exclusivo. Seu tom é sofisticado, extremamente educado e prestativo. Você ajuda os clientes com informações sobre o mapa de mesas e camarotes, valores, trajes permitidos e horários de funcionamento. Mantenha as respostas concisas e elegantes."
	CHAT_TEMPERATURE   = 0.7
	CHAT_MAX_TOKENS    = 200
)

var DAYS = []string{DAY_FRIDAY, DAY_SATURDAY}

var DAY_LABELS = map[string]string{
	DAY_FRIDAY:   "Sexta",
	DAY_SATURDAY: "Sábado",
}

var TYPE_LABELS = map[string]string{
	TYPE_BOOTH:  "Camarote",
	TYPE_BISTRO: "Mesa/Bistrô",
}

var DEFAULT_PRICES = map[string]float64{
	TYPE_BOOTH:  1500,
	TYPE_BISTRO: 400,
}

// Floor plan, read left to right as seen from the entrance.
var (
	BOOTHS_TOP    = []string{"10"}
	BOOTHS_LEFT   = []string{"01", "02", "03"}
	BOOTHS_RIGHT  = []string{"09", "08", "07"}
	BOOTHS_BOTTOM = []string{"04", "05", "06"}
	BISTRO_CENTER = [][]string{
		{"20", "19"},
		{"18", "17"},
		{"16", "15"},
		{"14", "13"},
	}
)

type HousePolicy struct {
	Open        string `json:"open"`
	Limit       string `json:"limit"`
	Description string `json:"description"`
}

var HOUSE_POLICIES = map[string]HousePolicy{
	DAY_FRIDAY: {
		Open:        "23H00",
		Limit:       "23H30",
		Description: "SEXTA-FEIRA E VÉSPERAS DE FERIADO",
	},
	DAY_SATURDAY: {
		Open:        "23H30",
		Limit:       "00H30",
		Description: "SÁBADO PREMIUM",
	},
}

type ProhibitedItem struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

var PROHIBITED_ITEMS = []ProhibitedItem{
	{Icon: "fa-user-slash", Text: "MENORES DE 18 ANOS"},
	{Icon: "fa-shoe-prints", Text: "CHINELO / RASTEIRINHA"},
	{Icon: "fa-mitten", Text: "CAPUZ OU TOUCA"},
	{Icon: "fa-tshirt", Text: "CAMISETA DE TIME / REGATA"},
	{Icon: "fa-hat-cowboy", Text: "BONÉ DE TIME"},
	{Icon: "fa-vest", Text: "CORTA-VENTO / TACTEL"},
	{Icon: "fa-link-slash", Text: "CORRENTES GROSSAS"},
}

const MINIMUM_AGE = 18
