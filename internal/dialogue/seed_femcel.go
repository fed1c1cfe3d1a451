package dialogue

func seedFemcelNodes() []*Node {
	return []*Node{
		{
			ID:             "start",
			Speaker:        "Mara",
			Text:           "I picked this place because the lighting is unflattering. If you can stand me here, the rest is statistics. Sit.",
			DateExpression: "deadpan",
			Choices: []Choice{
				{
					Label:  "The lighting is doing fine by you.",
					NextID: "wine",
				},
				{
					Label:   "Statistics? I like data on a first date.",
					NextID:  "wine",
					Effects: &Effects{Tags: []string{"engagedInSpreadsheet"}},
				},
				{
					Label:  "That's a funny opener. Ironic, even.",
					NextID: "wine",
				},
			},
		},
		{
			ID:      "wine",
			Speaker: "Mara",
			Text:    "I pre-grieved this date on the bus over. Saves time later. Wine? It's the house red, it tastes like resignation.",
			Choices: []Choice{
				{
					Label:   "Pour the resignation. Two glasses.",
					NextID:  "exes",
					Effects: &Effects{MoneyChange: -18},
					Receipt: []ReceiptLine{{Label: "House red x2", Cost: 18}},
				},
				{
					Label:  "Water for me. I want to remember this.",
					NextID: "exes",
				},
			},
		},
		{
			ID:             "exes",
			Speaker:        "Mara",
			Text:           "My last three dates ghosted me mid-sentence. I've started finishing my sentences faster. Anyway, what's wrong with you? Lead with the worst thing.",
			DateExpression: "wry",
			Choices: []Choice{
				{
					Label:   "I make jokes when things get real. Like now. Kidding. Not kidding.",
					NextID:  "real_talk",
					Effects: &Effects{Tags: []string{"humorDeflect"}},
				},
				{
					Label:  "I stay too long in things that are over.",
					NextID: "real_talk",
				},
				{
					Label:   "I don't do the trauma-swap thing on date one.",
					NextID:  "real_talk",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:      "real_talk",
			Speaker: "Mara",
			Text:    "Huh. You're still here. Most people have checked their phone four times by now. You've only checked twice. That's basically devotion.",
			Choices: []Choice{
				{
					Label:   "I'll wait as long as it takes for you to finish a sentence.",
					NextID:  "ending_seen",
					Effects: &Effects{Tags: []string{"stayedTooLong"}},
				},
				{
					Label:  "Actually, I do have to run. Early morning.",
					NextID: "ending_exit",
				},
				{
					Label:   "Dessert first. My treat. The expensive one.",
					NextID:  "ending_seen",
					Effects: &Effects{MoneyChange: -42, Tags: []string{"highSpend"}},
					Receipt: []ReceiptLine{{Label: "The expensive dessert", Cost: 42}},
				},
			},
		},
		{
			ID:          "ending_seen",
			Speaker:     "Mara",
			Text:        "She almost smiles. Almost.",
			IsEnding:    true,
			EndingTitle: "PRE-GRIEF CANCELLED",
			EndingText:  "Mara un-grieves the date on the bus home. She texts you a single 'fine, that was fine.' From her, it's a sonnet.",
			EndingReceipt: []ReceiptLine{
				{Label: "House red, shared", Cost: 18},
				{Label: "One almost-smile", Cost: 0},
			},
		},
		{
			ID:          "ending_exit",
			Speaker:     "Mara",
			Text:        "Called it, she says, not unkindly.",
			IsEnding:    true,
			EndingTitle: "AS FORETOLD",
			EndingText:  "She had already drafted the post-date autopsy. You leaving early means she gets to publish it unedited. Everybody wins, sort of.",
			EndingReceipt: []ReceiptLine{
				{Label: "Water (tap)", Cost: 0},
				{Label: "Confirmation of her worldview", Cost: 0},
			},
		},
	}
}
