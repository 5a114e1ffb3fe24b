package archetype

// combinationTable maps every valid joined answer combination to an
// archetype. Keys join the five choice IDs in survey order with ":".
// Generated from the archetype scoring matrix; keep exhaustive (3^5 entries).
var combinationTable = map[string]Key{
	"analytical:early_adopter:low:solo:market_trends":                  Strategist,
	"analytical:early_adopter:low:solo:long_term":                      Visionary,
	"analytical:early_adopter:low:solo:people_first":                   Strategist,
	"analytical:early_adopter:low:networker:market_trends":             Catalyst,
	"analytical:early_adopter:low:networker:long_term":                 Visionary,
	"analytical:early_adopter:low:networker:people_first":              Guardian,
	"analytical:early_adopter:low:team_builder:market_trends":          Guardian,
	"analytical:early_adopter:low:team_builder:long_term":              Visionary,
	"analytical:early_adopter:low:team_builder:people_first":           Guardian,
	"analytical:early_adopter:moderate:solo:market_trends":             Strategist,
	"analytical:early_adopter:moderate:solo:long_term":                 Visionary,
	"analytical:early_adopter:moderate:solo:people_first":              Strategist,
	"analytical:early_adopter:moderate:networker:market_trends":        Catalyst,
	"analytical:early_adopter:moderate:networker:long_term":            Visionary,
	"analytical:early_adopter:moderate:networker:people_first":         Strategist,
	"analytical:early_adopter:moderate:team_builder:market_trends":     Strategist,
	"analytical:early_adopter:moderate:team_builder:long_term":         Visionary,
	"analytical:early_adopter:moderate:team_builder:people_first":      Integrator,
	"analytical:early_adopter:high:solo:market_trends":                 Visionary,
	"analytical:early_adopter:high:solo:long_term":                     Visionary,
	"analytical:early_adopter:high:solo:people_first":                  Visionary,
	"analytical:early_adopter:high:networker:market_trends":            Catalyst,
	"analytical:early_adopter:high:networker:long_term":                Visionary,
	"analytical:early_adopter:high:networker:people_first":             Visionary,
	"analytical:early_adopter:high:team_builder:market_trends":         Visionary,
	"analytical:early_adopter:high:team_builder:long_term":             Visionary,
	"analytical:early_adopter:high:team_builder:people_first":          Visionary,
	"analytical:pragmatist:low:solo:market_trends":                     Strategist,
	"analytical:pragmatist:low:solo:long_term":                         Strategist,
	"analytical:pragmatist:low:solo:people_first":                      Strategist,
	"analytical:pragmatist:low:networker:market_trends":                Strategist,
	"analytical:pragmatist:low:networker:long_term":                    Strategist,
	"analytical:pragmatist:low:networker:people_first":                 Strategist,
	"analytical:pragmatist:low:team_builder:market_trends":             Strategist,
	"analytical:pragmatist:low:team_builder:long_term":                 Strategist,
	"analytical:pragmatist:low:team_builder:people_first":              Guardian,
	"analytical:pragmatist:moderate:solo:market_trends":                Strategist,
	"analytical:pragmatist:moderate:solo:long_term":                    Strategist,
	"analytical:pragmatist:moderate:solo:people_first":                 Strategist,
	"analytical:pragmatist:moderate:networker:market_trends":           Strategist,
	"analytical:pragmatist:moderate:networker:long_term":               Strategist,
	"analytical:pragmatist:moderate:networker:people_first":            Strategist,
	"analytical:pragmatist:moderate:team_builder:market_trends":        Strategist,
	"analytical:pragmatist:moderate:team_builder:long_term":            Strategist,
	"analytical:pragmatist:moderate:team_builder:people_first":         Integrator,
	"analytical:pragmatist:high:solo:market_trends":                    Strategist,
	"analytical:pragmatist:high:solo:long_term":                        Visionary,
	"analytical:pragmatist:high:solo:people_first":                     Strategist,
	"analytical:pragmatist:high:networker:market_trends":               Catalyst,
	"analytical:pragmatist:high:networker:long_term":                   Visionary,
	"analytical:pragmatist:high:networker:people_first":                Strategist,
	"analytical:pragmatist:high:team_builder:market_trends":            Strategist,
	"analytical:pragmatist:high:team_builder:long_term":                Visionary,
	"analytical:pragmatist:high:team_builder:people_first":             Integrator,
	"analytical:traditionalist:low:solo:market_trends":                 Guardian,
	"analytical:traditionalist:low:solo:long_term":                     Strategist,
	"analytical:traditionalist:low:solo:people_first":                  Guardian,
	"analytical:traditionalist:low:networker:market_trends":            Guardian,
	"analytical:traditionalist:low:networker:long_term":                Guardian,
	"analytical:traditionalist:low:networker:people_first":             Guardian,
	"analytical:traditionalist:low:team_builder:market_trends":         Guardian,
	"analytical:traditionalist:low:team_builder:long_term":             Guardian,
	"analytical:traditionalist:low:team_builder:people_first":          Guardian,
	"analytical:traditionalist:moderate:solo:market_trends":            Strategist,
	"analytical:traditionalist:moderate:solo:long_term":                Strategist,
	"analytical:traditionalist:moderate:solo:people_first":             Strategist,
	"analytical:traditionalist:moderate:networker:market_trends":       Catalyst,
	"analytical:traditionalist:moderate:networker:long_term":           Strategist,
	"analytical:traditionalist:moderate:networker:people_first":        Guardian,
	"analytical:traditionalist:moderate:team_builder:market_trends":    Guardian,
	"analytical:traditionalist:moderate:team_builder:long_term":        Strategist,
	"analytical:traditionalist:moderate:team_builder:people_first":     Guardian,
	"analytical:traditionalist:high:solo:market_trends":                Visionary,
	"analytical:traditionalist:high:solo:long_term":                    Visionary,
	"analytical:traditionalist:high:solo:people_first":                 Guardian,
	"analytical:traditionalist:high:networker:market_trends":           Catalyst,
	"analytical:traditionalist:high:networker:long_term":               Visionary,
	"analytical:traditionalist:high:networker:people_first":            Guardian,
	"analytical:traditionalist:high:team_builder:market_trends":        Guardian,
	"analytical:traditionalist:high:team_builder:long_term":            Visionary,
	"analytical:traditionalist:high:team_builder:people_first":         Guardian,
	"intuitive:early_adopter:low:solo:market_trends":                   Visionary,
	"intuitive:early_adopter:low:solo:long_term":                       Visionary,
	"intuitive:early_adopter:low:solo:people_first":                    Visionary,
	"intuitive:early_adopter:low:networker:market_trends":              Catalyst,
	"intuitive:early_adopter:low:networker:long_term":                  Visionary,
	"intuitive:early_adopter:low:networker:people_first":               Visionary,
	"intuitive:early_adopter:low:team_builder:market_trends":           Visionary,
	"intuitive:early_adopter:low:team_builder:long_term":               Visionary,
	"intuitive:early_adopter:low:team_builder:people_first":            Integrator,
	"intuitive:early_adopter:moderate:solo:market_trends":              Visionary,
	"intuitive:early_adopter:moderate:solo:long_term":                  Visionary,
	"intuitive:early_adopter:moderate:solo:people_first":               Visionary,
	"intuitive:early_adopter:moderate:networker:market_trends":         Catalyst,
	"intuitive:early_adopter:moderate:networker:long_term":             Visionary,
	"intuitive:early_adopter:moderate:networker:people_first":          Integrator,
	"intuitive:early_adopter:moderate:team_builder:market_trends":      Integrator,
	"intuitive:early_adopter:moderate:team_builder:long_term":          Visionary,
	"intuitive:early_adopter:moderate:team_builder:people_first":       Integrator,
	"intuitive:early_adopter:high:solo:market_trends":                  Visionary,
	"intuitive:early_adopter:high:solo:long_term":                      Visionary,
	"intuitive:early_adopter:high:solo:people_first":                   Visionary,
	"intuitive:early_adopter:high:networker:market_trends":             Catalyst,
	"intuitive:early_adopter:high:networker:long_term":                 Visionary,
	"intuitive:early_adopter:high:networker:people_first":              Visionary,
	"intuitive:early_adopter:high:team_builder:market_trends":          Visionary,
	"intuitive:early_adopter:high:team_builder:long_term":              Visionary,
	"intuitive:early_adopter:high:team_builder:people_first":           Visionary,
	"intuitive:pragmatist:low:solo:market_trends":                      Strategist,
	"intuitive:pragmatist:low:solo:long_term":                          Visionary,
	"intuitive:pragmatist:low:solo:people_first":                       Integrator,
	"intuitive:pragmatist:low:networker:market_trends":                 Catalyst,
	"intuitive:pragmatist:low:networker:long_term":                     Visionary,
	"intuitive:pragmatist:low:networker:people_first":                  Integrator,
	"intuitive:pragmatist:low:team_builder:market_trends":              Integrator,
	"intuitive:pragmatist:low:team_builder:long_term":                  Integrator,
	"intuitive:pragmatist:low:team_builder:people_first":               Integrator,
	"intuitive:pragmatist:moderate:solo:market_trends":                 Strategist,
	"intuitive:pragmatist:moderate:solo:long_term":                     Visionary,
	"intuitive:pragmatist:moderate:solo:people_first":                  Integrator,
	"intuitive:pragmatist:moderate:networker:market_trends":            Catalyst,
	"intuitive:pragmatist:moderate:networker:long_term":                Visionary,
	"intuitive:pragmatist:moderate:networker:people_first":             Integrator,
	"intuitive:pragmatist:moderate:team_builder:market_trends":         Integrator,
	"intuitive:pragmatist:moderate:team_builder:long_term":             Integrator,
	"intuitive:pragmatist:moderate:team_builder:people_first":          Integrator,
	"intuitive:pragmatist:high:solo:market_trends":                     Visionary,
	"intuitive:pragmatist:high:solo:long_term":                         Visionary,
	"intuitive:pragmatist:high:solo:people_first":                      Visionary,
	"intuitive:pragmatist:high:networker:market_trends":                Catalyst,
	"intuitive:pragmatist:high:networker:long_term":                    Visionary,
	"intuitive:pragmatist:high:networker:people_first":                 Integrator,
	"intuitive:pragmatist:high:team_builder:market_trends":             Integrator,
	"intuitive:pragmatist:high:team_builder:long_term":                 Visionary,
	"intuitive:pragmatist:high:team_builder:people_first":              Integrator,
	"intuitive:traditionalist:low:solo:market_trends":                  Guardian,
	"intuitive:traditionalist:low:solo:long_term":                      Visionary,
	"intuitive:traditionalist:low:solo:people_first":                   Guardian,
	"intuitive:traditionalist:low:networker:market_trends":             Catalyst,
	"intuitive:traditionalist:low:networker:long_term":                 Guardian,
	"intuitive:traditionalist:low:networker:people_first":              Guardian,
	"intuitive:traditionalist:low:team_builder:market_trends":          Guardian,
	"intuitive:traditionalist:low:team_builder:long_term":              Guardian,
	"intuitive:traditionalist:low:team_builder:people_first":           Guardian,
	"intuitive:traditionalist:moderate:solo:market_trends":             Visionary,
	"intuitive:traditionalist:moderate:solo:long_term":                 Visionary,
	"intuitive:traditionalist:moderate:solo:people_first":              Integrator,
	"intuitive:traditionalist:moderate:networker:market_trends":        Catalyst,
	"intuitive:traditionalist:moderate:networker:long_term":            Visionary,
	"intuitive:traditionalist:moderate:networker:people_first":         Integrator,
	"intuitive:traditionalist:moderate:team_builder:market_trends":     Integrator,
	"intuitive:traditionalist:moderate:team_builder:long_term":         Integrator,
	"intuitive:traditionalist:moderate:team_builder:people_first":      Integrator,
	"intuitive:traditionalist:high:solo:market_trends":                 Visionary,
	"intuitive:traditionalist:high:solo:long_term":                     Visionary,
	"intuitive:traditionalist:high:solo:people_first":                  Visionary,
	"intuitive:traditionalist:high:networker:market_trends":            Catalyst,
	"intuitive:traditionalist:high:networker:long_term":                Visionary,
	"intuitive:traditionalist:high:networker:people_first":             Visionary,
	"intuitive:traditionalist:high:team_builder:market_trends":         Visionary,
	"intuitive:traditionalist:high:team_builder:long_term":             Visionary,
	"intuitive:traditionalist:high:team_builder:people_first":          Integrator,
	"opportunistic:early_adopter:low:solo:market_trends":               Catalyst,
	"opportunistic:early_adopter:low:solo:long_term":                   Visionary,
	"opportunistic:early_adopter:low:solo:people_first":                Visionary,
	"opportunistic:early_adopter:low:networker:market_trends":          Catalyst,
	"opportunistic:early_adopter:low:networker:long_term":              Catalyst,
	"opportunistic:early_adopter:low:networker:people_first":           Catalyst,
	"opportunistic:early_adopter:low:team_builder:market_trends":       Catalyst,
	"opportunistic:early_adopter:low:team_builder:long_term":           Visionary,
	"opportunistic:early_adopter:low:team_builder:people_first":        Guardian,
	"opportunistic:early_adopter:moderate:solo:market_trends":          Catalyst,
	"opportunistic:early_adopter:moderate:solo:long_term":              Visionary,
	"opportunistic:early_adopter:moderate:solo:people_first":           Visionary,
	"opportunistic:early_adopter:moderate:networker:market_trends":     Catalyst,
	"opportunistic:early_adopter:moderate:networker:long_term":         Catalyst,
	"opportunistic:early_adopter:moderate:networker:people_first":      Catalyst,
	"opportunistic:early_adopter:moderate:team_builder:market_trends":  Catalyst,
	"opportunistic:early_adopter:moderate:team_builder:long_term":      Visionary,
	"opportunistic:early_adopter:moderate:team_builder:people_first":   Integrator,
	"opportunistic:early_adopter:high:solo:market_trends":              Catalyst,
	"opportunistic:early_adopter:high:solo:long_term":                  Visionary,
	"opportunistic:early_adopter:high:solo:people_first":               Visionary,
	"opportunistic:early_adopter:high:networker:market_trends":         Catalyst,
	"opportunistic:early_adopter:high:networker:long_term":             Visionary,
	"opportunistic:early_adopter:high:networker:people_first":          Catalyst,
	"opportunistic:early_adopter:high:team_builder:market_trends":      Catalyst,
	"opportunistic:early_adopter:high:team_builder:long_term":          Visionary,
	"opportunistic:early_adopter:high:team_builder:people_first":       Visionary,
	"opportunistic:pragmatist:low:solo:market_trends":                  Catalyst,
	"opportunistic:pragmatist:low:solo:long_term":                      Strategist,
	"opportunistic:pragmatist:low:solo:people_first":                   Strategist,
	"opportunistic:pragmatist:low:networker:market_trends":             Catalyst,
	"opportunistic:pragmatist:low:networker:long_term":                 Catalyst,
	"opportunistic:pragmatist:low:networker:people_first":              Catalyst,
	"opportunistic:pragmatist:low:team_builder:market_trends":          Catalyst,
	"opportunistic:pragmatist:low:team_builder:long_term":              Strategist,
	"opportunistic:pragmatist:low:team_builder:people_first":           Integrator,
	"opportunistic:pragmatist:moderate:solo:market_trends":             Catalyst,
	"opportunistic:pragmatist:moderate:solo:long_term":                 Strategist,
	"opportunistic:pragmatist:moderate:solo:people_first":              Integrator,
	"opportunistic:pragmatist:moderate:networker:market_trends":        Catalyst,
	"opportunistic:pragmatist:moderate:networker:long_term":            Catalyst,
	"opportunistic:pragmatist:moderate:networker:people_first":         Catalyst,
	"opportunistic:pragmatist:moderate:team_builder:market_trends":     Catalyst,
	"opportunistic:pragmatist:moderate:team_builder:long_term":         Integrator,
	"opportunistic:pragmatist:moderate:team_builder:people_first":      Integrator,
	"opportunistic:pragmatist:high:solo:market_trends":                 Catalyst,
	"opportunistic:pragmatist:high:solo:long_term":                     Visionary,
	"opportunistic:pragmatist:high:solo:people_first":                  Visionary,
	"opportunistic:pragmatist:high:networker:market_trends":            Catalyst,
	"opportunistic:pragmatist:high:networker:long_term":                Catalyst,
	"opportunistic:pragmatist:high:networker:people_first":             Catalyst,
	"opportunistic:pragmatist:high:team_builder:market_trends":         Catalyst,
	"opportunistic:pragmatist:high:team_builder:long_term":             Visionary,
	"opportunistic:pragmatist:high:team_builder:people_first":          Integrator,
	"opportunistic:traditionalist:low:solo:market_trends":              Catalyst,
	"opportunistic:traditionalist:low:solo:long_term":                  Guardian,
	"opportunistic:traditionalist:low:solo:people_first":               Guardian,
	"opportunistic:traditionalist:low:networker:market_trends":         Catalyst,
	"opportunistic:traditionalist:low:networker:long_term":             Catalyst,
	"opportunistic:traditionalist:low:networker:people_first":          Guardian,
	"opportunistic:traditionalist:low:team_builder:market_trends":      Guardian,
	"opportunistic:traditionalist:low:team_builder:long_term":          Guardian,
	"opportunistic:traditionalist:low:team_builder:people_first":       Guardian,
	"opportunistic:traditionalist:moderate:solo:market_trends":         Catalyst,
	"opportunistic:traditionalist:moderate:solo:long_term":             Visionary,
	"opportunistic:traditionalist:moderate:solo:people_first":          Guardian,
	"opportunistic:traditionalist:moderate:networker:market_trends":    Catalyst,
	"opportunistic:traditionalist:moderate:networker:long_term":        Catalyst,
	"opportunistic:traditionalist:moderate:networker:people_first":     Catalyst,
	"opportunistic:traditionalist:moderate:team_builder:market_trends": Catalyst,
	"opportunistic:traditionalist:moderate:team_builder:long_term":     Guardian,
	"opportunistic:traditionalist:moderate:team_builder:people_first":  Integrator,
	"opportunistic:traditionalist:high:solo:market_trends":             Catalyst,
	"opportunistic:traditionalist:high:solo:long_term":                 Visionary,
	"opportunistic:traditionalist:high:solo:people_first":              Visionary,
	"opportunistic:traditionalist:high:networker:market_trends":        Catalyst,
	"opportunistic:traditionalist:high:networker:long_term":            Catalyst,
	"opportunistic:traditionalist:high:networker:people_first":         Catalyst,
	"opportunistic:traditionalist:high:team_builder:market_trends":     Catalyst,
	"opportunistic:traditionalist:high:team_builder:long_term":         Visionary,
	"opportunistic:traditionalist:high:team_builder:people_first":      Guardian,
}
