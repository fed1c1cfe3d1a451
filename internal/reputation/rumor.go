package reputation

// rumorPools maps each flag to its candidate rumor lines. GenerateRumor
// draws uniformly from the union of pools for every true flag.
var rumorPools = map[string][]string{
	TagLeftEarly: {
		"I heard you ghost people mid-date.",
		"Someone said you know every bathroom window in town.",
	},
	TagStayedTooLong: {
		"I heard you're... patient.",
		"Word is you'll sit through anything. Anything.",
	},
	TagBoundarySetter: {
		"I heard you have 'boundaries.'",
		"They say you said no twice. Out loud.",
	},
	TagHumorDeflect: {
		"I heard you use humor as a defense mechanism.",
		"Apparently everything's a bit with you.",
	},
	TagEngagedInSpreadsheet: {
		"I heard you understood the algorithm.",
		"Someone said you asked to see the raw data. On a date.",
	},
	TagHighSpend: {
		"I heard you're generous.",
		"Word is you tip like you're apologizing for something.",
	},
	TagChaosAgent: {
		"I heard you caused a scene.",
		"They're still talking about the table. The one you almost flipped.",
	},
}

// noInfoRumors is drawn from when no flag is set yet.
var noInfoRumors = []string{
	"I haven't heard much about you.",
	"Nobody has anything on you. That's almost suspicious.",
}

// GenerateRumor returns one line of gossip about the player, picked at
// random from the pools of every true flag. Inject a seeded source via
// NewClassifier for reproducible output.
func (c *Classifier) GenerateRumor() string {
	var lines []string
	for _, tag := range c.Tags() {
		lines = append(lines, rumorPools[tag]...)
	}
	if len(lines) == 0 {
		lines = noInfoRumors
	}
	return lines[c.rng.Intn(len(lines))]
}
