// Package catalog holds the code-level fine-type catalog. The list is
// reconciled into the database at startup by services.ReconcileFineTypes;
// bumping Version is what triggers that work on the next restart.
package catalog

// FineTypeDef is one catalog entry. Amounts are whole kroner.
type FineTypeDef struct {
	Name        string
	Amount      int
	Description string
	Category    string
}

// Version stamps the current catalog revision. Bump the date whenever
// FineTypes, Renames or DefaultRules change.
const Version = "2026-05-04"

// FineTypes is the full rule book. Names must be unique; the reconciler
// matches rows by exact name.
var FineTypes = []FineTypeDef{
	// § 69
	{Name: "§ 69 Inkasso", Amount: 50, Description: "Ikkje betale bøter i tide, straffast med ei bot på 50 kr per dag.", Category: "§ 69"},

	// Kapittel 1: Trening
	{Name: "§ 1-1 Fråvær trening", Amount: 100, Description: "Ikkje møte på trening uten gyldig grunn. Gyldig grunn kan vere jobb, sjukdom, skade og planlagt ferie.", Category: "Trening"},
	{Name: "§ 1-2 Sein til treningsstart", Amount: 100, Description: "Komme forseint til treningsstart. Du er ikkje klar når trening startar.", Category: "Trening"},
	{Name: "§ 1-3 Sein til oppmøte (trening)", Amount: 100, Description: "Komme for sent til oppmøte. Oppmøte er satt minst 15 min før trening.", Category: "Trening"},
	{Name: "§ 1-4 Tunnel i firkant", Amount: 20, Description: "Du blir slått tunnel på, hvor medspiller får touch på ballen etter tunnelen.", Category: "Trening"},
	{Name: "§ 1-5 Ball ut av stadion", Amount: 25, Description: "Du skyter ballen over nettet bak mål. Gjeld kun på kamp.", Category: "Trening"},
	{Name: "§ 1-6 Do-pause", Amount: 25, Description: "Du forlater en trening som har startet for å gå på do.", Category: "Trening"},
	{Name: "§ 1-7 Feil farge på treningstøy", Amount: 50, Description: "Du trener i annen farge enn grønn.", Category: "Trening"},
	{Name: "§ 1-8 Feil klubblogo", Amount: 50, Description: "Du trener med en annen klubb sin logo på treningstøyet.", Category: "Trening"},
	{Name: "§ 1-9 Taper botkonkurranse", Amount: 20, Description: "Det gjennomføres botkonkurranser et par ganger i måneden. Dei som feiler eller taper (3 stk.) konkurransen blir dømt til bot.", Category: "Trening"},
	{Name: "§ 1-10 Gløymt personleg utstyr", Amount: 50, Description: "Gløymt personlig utstyr (gjeld alt, fra flaske til såle).", Category: "Trening"},
	{Name: "§ 1-11 Utstyr inn/ut", Amount: 50, Description: "De fire yngste på trening har ansvar for å ut og inn utstyr. ALLE spillere skal hjelpe å samle inn.", Category: "Trening"},

	// Kapittel 2: Kamp
	{Name: "§ 2-1 Fråvær kamp", Amount: 500, Description: "Ikkje møte på kamp, uten å melde forfall innen rimelig tid. Botsjefene avgjør kva som er rimelig tid.", Category: "Kamp"},
	{Name: "§ 2-2 Forfall sløv prioritering", Amount: 100, Description: "Forfall til kamp, som følge av sløv prioritering. Du melder forfall fordi du ikkje har strukturert eigen kvardag godt nok.", Category: "Kamp"},
	{Name: "§ 2-3 Konfirmasjonsbot", Amount: 50, Description: "Du går glipp av kamp fordi du prioriterer konfirmasjon.", Category: "Kamp"},
	{Name: "§ 2-4 Sein til oppmøte (kamp)", Amount: 100, Description: "Komme for sent til oppmøte på kamp.", Category: "Kamp"},
	{Name: "§ 2-5 Sein til kampstart", Amount: 500, Description: "Komme forseint til kampstart. Gjelder ikkje dersom ein har god dialog med trenerteam/botsjef.", Category: "Kamp"},
	{Name: "§ 2-6 Gløymt kamputstyr", Amount: 100, Description: "Gløymt nødvendig kamputstyr (sko, leggskinn og evt. annet).", Category: "Kamp"},
	{Name: "§ 2-7 Gløymt utstyr etter kamp", Amount: 50, Description: "Gløymt utstyr etter kamp (gjeld alt, fra flaske, sko, bukse osv.).", Category: "Kamp"},
	{Name: "§ 2-8 Unødvendig gult kort", Amount: 100, Description: "Unødvendig gult kort.", Category: "Kamp"},
	{Name: "§ 2-9 Unødvendig rødt kort", Amount: 200, Description: "Unødvendig rødt kort.", Category: "Kamp"},
	{Name: "§ 2-10 Feilkast", Amount: 50, Description: "Feilkast. Dommeren dømmer.", Category: "Kamp"},

	// Kapittel 3: Uønskt atferd
	{Name: "§ 3-1 Manglande bursdagskake", Amount: 200, Description: "Ikkje ta med bursdagskake den uken du har bursdag.", Category: "Uønskt atferd"},
	{Name: "§ 3-2 Provoserende atferd mot botsjef", Amount: 50, Description: "Fått ein klar bot, men klaga likevel til botsjefane. Botsjefane bestemme kva klaging er.", Category: "Uønskt atferd"},
	{Name: "§ 3-3 Idiotbot", Amount: 50, Description: "Du oppfører deg, eller fremstår som ein tulling. 10–300 kr. Botsjefene avgjør. Summen avgjøres på alvorlighetsgrad av synden.", Category: "Uønskt atferd"},
	{Name: "§ 3-4 Lygebot", Amount: 50, Description: "Du blir tatt i løgn.", Category: "Uønskt atferd"},
	{Name: "§ 3-5 Fylla dagen før kamp", Amount: 200, Description: "Du er full på fest dagen før kamp. Vitner sier du var full.", Category: "Uønskt atferd"},
	{Name: "§ 3-6 Ikkje møte på lagfest", Amount: 25, Description: "Ikkje møte på lagfest. 25 kr eller 200 kr. Summen settes etter kor godt planlagt festen er.", Category: "Uønskt atferd"},
	{Name: "§ 3-7 Pisse i dusjen", Amount: 200, Description: "Pisse i dusjen i laget garderobe.", Category: "Uønskt atferd"},
	{Name: "§ 3-8 Mobil i garderoben", Amount: 25, Description: "Du bruker mobilen i garderoben i oppmøtetid. Unntak: DJ og botsjefer.", Category: "Uønskt atferd"},
	{Name: "§ 3-9 Hodeplagg inn i garderoben", Amount: 20, Description: "Du har på hodeplagg når du går over dørstokken inn i garderoben/klubben.", Category: "Uønskt atferd"},
	{Name: "§ 3-10 Manglande bidrag til botkassen", Amount: 75, Description: "Du bidrar ikkje til fellesskapet gjennom botkassen, og straffes for dårlig lagånd.", Category: "Uønskt atferd"},
	{Name: "§ 3-11 Mediebot", Amount: 50, Description: "Du intervjues av media uten å gi Kaupanger ein «Shoutout».", Category: "Uønskt atferd"},

	// Kapittel 4: Spond
	{Name: "§ 4-1 Svarfrist Spond", Amount: 50, Description: "Svarfrist søndag for deltakelse på denne ukens treninger. Unntak: Uforutsette ting.", Category: "Spond"},
	{Name: "§ 4-2 Forfall etter kl 12", Amount: 50, Description: "Forfall til trening grunnet uforutsette hendelser etter 12.00 på treningsdag. Unntak: dersom botsjef meiner du har god nok grunn.", Category: "Spond"},
}

// Renames maps names from earlier catalog revisions to their current
// names. Applied before upserts so the renamed row is updated in place
// instead of duplicated. A missing old name is a no-op.
var Renames = map[string]string{
	"Sein til trening": "§ 1-2 Sein til treningsstart",
	"Sein til kamp":    "§ 2-5 Sein til kampstart",
	"Fråvær trening":   "§ 1-1 Fråvær trening",
	"Gløymt utstyr":    "§ 1-10 Gløymt personleg utstyr",
	"Gult kort":        "§ 2-8 Unødvendig gult kort",
	"Raudt kort":       "§ 2-9 Unødvendig rødt kort",
}
