package catalog

// DefaultRules is the rules page content written into SiteContent on
// every catalog reconciliation (full overwrite). Admins can edit the
// page between revisions; a version bump restores this text.
const DefaultRules = `# Botsystemreglar - Kaupanger

Botsjefane handhevar reglane. Alle bøter vert registrerte i botkassen og
skal betalast innan rimeleg tid. Ubetalte bøter gjev automatisk
forsein-bot (100 kr) etter månadsskiftet, og spelarar heilt utan bøter
ein månad får automatisk "Botfri månad"-bot (70 kr). Ingen slepp unna.

## § 69 Inkasso
Ikkje betale bøter i tide: 50 kr per dag.

## Kapittel 1: Trening
- § 1-1 Fråvær trening utan gyldig grunn: 100 kr
- § 1-2 Sein til treningsstart: 100 kr
- § 1-3 Sein til oppmøte (minst 15 min før trening): 100 kr
- § 1-4 Tunnel i firkant: 20 kr
- § 1-5 Ball ut av stadion: 25 kr
- § 1-6 Do-pause: 25 kr
- § 1-7 Feil farge på treningstøy: 50 kr
- § 1-8 Feil klubblogo: 50 kr
- § 1-9 Taper botkonkurranse: 20 kr
- § 1-10 Gløymt personleg utstyr: 50 kr
- § 1-11 Utstyr inn/ut: 50 kr

## Kapittel 2: Kamp
- § 2-1 Fråvær kamp: 500 kr
- § 2-2 Forfall sløv prioritering: 100 kr
- § 2-3 Konfirmasjonsbot: 50 kr
- § 2-4 Sein til oppmøte (kamp): 100 kr
- § 2-5 Sein til kampstart: 500 kr
- § 2-6 Gløymt kamputstyr: 100 kr
- § 2-7 Gløymt utstyr etter kamp: 50 kr
- § 2-8 Unødvendig gult kort: 100 kr
- § 2-9 Unødvendig rødt kort: 200 kr
- § 2-10 Feilkast: 50 kr

## Kapittel 3: Uønskt atferd
- § 3-1 Manglande bursdagskake: 200 kr
- § 3-2 Provoserende atferd mot botsjef: 50 kr
- § 3-3 Idiotbot: 10–300 kr (botsjefane avgjer)
- § 3-4 Lygebot: 50 kr
- § 3-5 Fylla dagen før kamp: 200 kr
- § 3-6 Ikkje møte på lagfest: 25–200 kr
- § 3-7 Pisse i dusjen: 200 kr
- § 3-8 Mobil i garderoben: 25 kr
- § 3-9 Hodeplagg inn i garderoben: 20 kr
- § 3-10 Manglande bidrag til botkassen: 75 kr
- § 3-11 Mediebot: 50 kr

## Kapittel 4: Spond
- § 4-1 Svarfrist Spond: 50 kr
- § 4-2 Forfall etter kl 12: 50 kr

Klager på bøter vert handsama av botsjefane. Klaging utan grunnlag er
sjølv botlagt, jf. § 3-2.`
