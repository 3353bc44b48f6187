package schema

// Well-known power scheme GUIDs, keyed by canonical scheme.
var SchemeGUIDs = map[PowerScheme]string{
	SchemeHighPerformance:     "8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c",
	SchemeBalanced:            "381b4222-f694-41f0-9685-ff5bb260df2e",
	SchemePowerSaver:          "a1841308-3541-4fab-bc81-f71556f20b4a",
	SchemeUltimatePerformance: "e9a42b02-d5df-448d-aa00-03f14749eb61",
}

// Well-known power overlay mode GUIDs, keyed by canonical mode.
// The balanced overlay is the all-zero GUID.
var ModeGUIDs = map[PowerMode]string{
	ModeBetterBattery:     "961cc777-2547-4f9d-8174-7d86181b8a7a",
	ModeBalanced:          "00000000-0000-0000-0000-000000000000",
	ModeBetterPerformance: "3af9b8d9-7c97-431d-ad78-34a8bfea439f",
	ModeBestPerformance:   "ded574b5-45a0-4f42-8737-46345c09c238",
}

// schemeAliases maps an expected-value spelling to the set of concrete
// schemes that satisfy it. "high_performance" accepts the ultimate scheme
// too, since ultimate is a strict superset of high performance.
var schemeAliases = map[string][]PowerScheme{
	"high_performance":     {SchemeHighPerformance, SchemeUltimatePerformance},
	"high":                 {SchemeHighPerformance, SchemeUltimatePerformance},
	"ultimate_performance": {SchemeUltimatePerformance},
	"ultimate":             {SchemeUltimatePerformance},
	"balanced":             {SchemeBalanced},
	"power_saver":          {SchemePowerSaver},
	"saver":                {SchemePowerSaver},
}

// modeAliases maps an expected-value spelling to the set of overlay modes
// that satisfy it. "better_performance" accepts best performance too.
var modeAliases = map[string][]PowerMode{
	"best_performance":   {ModeBestPerformance},
	"best":               {ModeBestPerformance},
	"max":                {ModeBestPerformance},
	"better_performance": {ModeBetterPerformance, ModeBestPerformance},
	"better":             {ModeBetterPerformance, ModeBestPerformance},
	"high":               {ModeBetterPerformance, ModeBestPerformance},
	"balanced":           {ModeBalanced},
	"default":            {ModeBalanced},
	"better_battery":     {ModeBetterBattery},
	"battery":            {ModeBetterBattery},
	"saver":              {ModeBetterBattery},
}

// schemeFixTargets maps an expected-value spelling to the scheme a fix
// should activate. Aliases that accept several schemes fix to the weakest
// one that satisfies the expectation.
var schemeFixTargets = map[string]PowerScheme{
	"high_performance":     SchemeHighPerformance,
	"high":                 SchemeHighPerformance,
	"ultimate_performance": SchemeUltimatePerformance,
	"ultimate":             SchemeUltimatePerformance,
	"balanced":             SchemeBalanced,
	"power_saver":          SchemePowerSaver,
	"saver":                SchemePowerSaver,
}

// modeFixTargets maps an expected-value spelling to the overlay mode a fix
// should activate.
var modeFixTargets = map[string]PowerMode{
	"best_performance":   ModeBestPerformance,
	"best":               ModeBestPerformance,
	"max":                ModeBestPerformance,
	"better_performance": ModeBetterPerformance,
	"better":             ModeBetterPerformance,
	"high":               ModeBetterPerformance,
	"balanced":           ModeBalanced,
	"default":            ModeBalanced,
	"better_battery":     ModeBetterBattery,
	"battery":            ModeBetterBattery,
	"saver":              ModeBetterBattery,
}
