package eligibility

// Keyword lists used by the classifier. Matching is case-insensitive
// substring containment with no word-boundary requirement; a keyword may
// match inside a longer word. That trades precision for recall on messy
// posting text.

// hybridKeywords indicate partial office presence.
var hybridKeywords = []string{
	"hybrid", "hybrid work", "hybrid model", "hybrid schedule",
	"days in office", "days per week in office", "in-office days",
	"office presence", "some days in office",
}

// onsiteKeywords indicate an in-person position.
var onsiteKeywords = []string{
	"on-site", "onsite", "on site", "in-office", "in office",
	"office based", "office-based", "must be located in",
	"must be based in", "must relocate", "relocation required",
	"physical presence required", "in person", "local candidates",
	"candidates must be in", "candidates must reside",
}

// remoteKeywords are strong remote signals that veto the onsite check.
var remoteKeywords = []string{
	"remote", "work from home", "fully remote", "100% remote",
	"remote-first", "distributed team",
}

// juniorKeywords indicate a junior or entry-level role.
var juniorKeywords = []string{
	"junior role", "entry level", "entry-level",
}

// internKeywords indicate an internship. The surrounding spaces on the first
// entry are intentional: they keep "intern" from matching "internal" or
// "international".
var internKeywords = []string{
	" intern ", "internship",
}

// clearanceKeywords indicate a security-clearance or background-check
// requirement, including Public Trust and investigation tiers.
var clearanceKeywords = []string{
	"security clearance", "clearance required", "must have clearance", "active clearance",
	"public trust", "public-trust", "secret clearance", "top secret", "top-secret",
	"ts/sci", "ts clearance", "secret/ts", "confidential clearance",
	"dod clearance", "government clearance", "federal clearance",
	"clearance eligible", "ability to obtain clearance", "obtain security clearance",
	"maintain clearance", "possess clearance", "hold clearance",
	"interim clearance", "final clearance", "adjudicated clearance",
	"naci", "naclc", "tier 1", "tier 2", "tier 3", "tier 4", "tier 5",
	"background investigation", "suitability determination",
	"ci poly", "polygraph", "lifestyle polygraph", "counterintelligence polygraph",
}
