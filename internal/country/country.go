package country

import (
	"autoapple/internal/textnorm"
)

// paisMap mapeia sinônimos/variações em inglês (e erros comuns de
// digitação) para o nome canônico em espanhol exigido pelo portal.
var paisMap = map[string]string{
	"USA": "Estados Unidos", "U S A": "Estados Unidos", "US": "Estados Unidos", "U S": "Estados Unidos",
	"UNITED STATES": "Estados Unidos", "UNITED STATES OF AMERICA": "Estados Unidos", "EEUU": "Estados Unidos",
	"EE UU": "Estados Unidos", "E E U U": "Estados Unidos", "U S OF A": "Estados Unidos",
	"UNITED KINGDON": "Reino Unido", "UNITED KINGDOM": "Reino Unido", "UK": "Reino Unido", "U K": "Reino Unido",
	"GREAT BRITAIN": "Reino Unido", "GB": "Reino Unido", "ENGLAND": "Reino Unido", "SCOTLAND": "Reino Unido", "WALES": "Reino Unido",
	"NORTHERN IRELAND": "Reino Unido",
	"CANADA":           "Canadá", "MEXICO": "México", "MEJICO": "México",
	"BRAZIL": "Brasil", "ARGENTINA": "Argentina", "CHILE": "Chile", "COLOMBIA": "Colombia", "PERU": "Perú",
	"VENEZUELA": "Venezuela", "ECUADOR": "Ecuador", "BOLIVIA": "Bolivia", "PARAGUAY": "Paraguay", "URUGUAY": "Uruguay",
	"SPAIN": "España", "PORTUGAL": "Portugal", "FRANCE": "Francia", "GERMANY": "Alemania", "DEUTSCHLAND": "Alemania",
	"ITALY": "Italia", "NETHERLANDS": "Países Bajos", "HOLLAND": "Países Bajos", "NL": "Países Bajos",
	"BELGIUM": "Bélgica", "BELGIQUE": "Bélgica", "BELGIE": "Bélgica",
	"SWITZERLAND": "Suiza", "SUISSE": "Suiza", "SCHWEIZ": "Suiza", "SVIZZERA": "Suiza",
	"AUSTRIA": "Austria", "SWEDEN": "Suecia", "NORWAY": "Noruega", "DENMARK": "Dinamarca", "FINLAND": "Finlandia",
	"IRELAND": "Irlanda", "EIRE": "Irlanda", "GREECE": "Grecia", "POLAND": "Polonia", "POLSKA": "Polonia",
	"CZECH REPUBLIC": "Chequia", "CZECHIA": "Chequia", "HUNGARY": "Hungría", "ROMANIA": "Rumanía",
	"RUSSIA": "Rusia", "RUSSIAN FEDERATION": "Rusia", "UKRAINE": "Ucrania", "TURKEY": "Turquía", "TURKIYE": "Turquía",
	"CHINA": "China", "PRC": "China", "MAINLAND CHINA": "China", "HONG KONG": "Hong Kong (China)",
	"MACAU": "Macao (China)", "MACAO": "Macao (China)", "TAIWAN": "Taiwán", "JAPAN": "Japón",
	"SOUTH KOREA": "Corea del Sur", "REPUBLIC OF KOREA": "Corea del Sur", "KOREA": "Corea del Sur",
	"NORTH KOREA": "Corea del Norte", "DPRK": "Corea del Norte", "INDIA": "India", "PAKISTAN": "Pakistán",
	"BANGLADESH": "Bangladés", "SRI LANKA": "Sri Lanka", "NEPAL": "Nepal", "INDONESIA": "Indonesia",
	"PHILIPPINES": "Filipinas", "MALAYSIA": "Malasia", "SINGAPORE": "Singapur", "THAILAND": "Tailandia",
	"VIETNAM": "Vietnam", "VIET NAM": "Vietnam", "CAMBODIA": "Camboya", "KAMPUCHEA": "Camboya", "LAOS": "Laos",
	"AUSTRALIA": "Australia", "NEW ZEALAND": "Nueva Zelanda", "NZ": "Nueva Zelanda",
	"SOUTH AFRICA": "Sudáfrica", "RSA": "Sudáfrica", "EGYPT": "Egipto", "MOROCCO": "Marruecos", "ALGERIA": "Argelia",
	"TUNISIA": "Túnez", "NIGERIA": "Nigeria", "KENYA": "Kenia", "ETHIOPIA": "Etiopía", "GHANA": "Ghana",
	"COTE D IVOIRE": "Costa de Marfil", "COTE DIVOIRE": "Costa de Marfil",
	"IVORY COAST": "Costa de Marfil", "SAUDI ARABIA": "Arabia Saudita", "KSA": "Arabia Saudita",
	"UNITED ARAB EMIRATES": "Emiratos Árabes Unidos", "UAE": "Emiratos Árabes Unidos", "QATAR": "Catar",
	"KUWAIT": "Kuwait", "OMAN": "Omán", "BAHRAIN": "Baréin", "ISRAEL": "Israel", "JORDAN": "Jordania", "LEBANON": "Líbano",
}

// paisES cobre nomes que já chegam em espanhol (com ou sem acento),
// mapeando para si mesmos.
var paisES = map[string]string{
	"Argentina": "Argentina", "Bolivia": "Bolivia", "Brasil": "Brasil", "Canadá": "Canadá", "Chile": "Chile",
	"Colombia": "Colombia", "Costa Rica": "Costa Rica", "Cuba": "Cuba", "Ecuador": "Ecuador", "El Salvador": "El Salvador",
	"España": "España", "Estados Unidos": "Estados Unidos", "Francia": "Francia", "Guatemala": "Guatemala", "Honduras": "Honduras",
	"Italia": "Italia", "México": "México", "Nicaragua": "Nicaragua", "Panamá": "Panamá", "Paraguay": "Paraguay",
	"Perú": "Perú", "Portugal": "Portugal", "Puerto Rico": "Puerto Rico", "Reino Unido": "Reino Unido", "República Dominicana": "República Dominicana",
	"Uruguay": "Uruguay", "Venezuela": "Venezuela",
}

// paisESKeys é o índice de paisES pela chave normalizada, montado uma vez.
var paisESKeys = func() map[string]string {
	m := make(map[string]string, len(paisES))
	for k, v := range paisES {
		m[textnorm.AlnumKey(k)] = v
	}
	return m
}()

// Resolve devolve o nome canônico em espanhol para qualquer texto de
// país. Nunca falha: sem correspondência, cai em PrettyCap do texto
// bruto; texto vazio vira "Chile".
func Resolve(raw string) string {
	key := textnorm.AlnumKey(raw)
	if v, ok := paisMap[key]; ok {
		return v
	}
	if v, ok := paisESKeys[key]; ok {
		return v
	}
	if raw == "" {
		raw = "Chile"
	}
	return textnorm.PrettyCap(raw)
}
