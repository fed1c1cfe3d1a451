package dialogue

func seedBopNodes() []*Node {
	return []*Node{
		{
			ID:             "start",
			Speaker:        "Kai",
			Text:           "Okay so the bartender knows me, the DJ owes me, and the guy in the corner is my ex. Welcome to my Tuesday. You drink espresso martinis, right? Everyone I date does.",
			DateExpression: "electric",
			Choices: []Choice{
				{
					Label:   "Sure, when in Rome.",
					NextID:  "gossip",
					Effects: &Effects{MoneyChange: -16},
					Receipt: []ReceiptLine{{Label: "Espresso martini", Cost: 16}},
				},
				{
					Label:  "I'll pick my own drink, thanks.",
					NextID: "gossip",
				},
			},
		},
		{
			ID:      "gossip",
			Speaker: "Kai",
			Text:    "Quick download: don't mention the boat, the ex is watching, and if anyone asks we met at a gallery. You're doing great. Isn't this fun?",
			Choices: []Choice{
				{
					Label:   "Which boat? I need the whole saga.",
					NextID:  "the_ex",
					Effects: &Effects{PatienceChange: -1},
				},
				{
					Label:  "We met on an app, and I'll say so.",
					NextID: "the_ex",
				},
				{
					Label:   "This is a lot. I might just go.",
					NextID:  "the_ex",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:             "the_ex",
			Speaker:        "Kai",
			Text:           "The ex is coming over. Act like you're obsessed with me. Or cause a distraction. Honestly either is great for my arc.",
			DateExpression: "conspiratorial",
			Choices: []Choice{
				{
					Label:   "I could flip this table. Big scene. Very memorable.",
					NextID:  "aftermath",
					Effects: &Effects{Tags: []string{"chaosAgent"}},
				},
				{
					Label:   "I'm not a prop. I'll be at the bar.",
					NextID:  "aftermath",
					Effects: &Effects{Tags: []string{"boundarySetter"}},
				},
				{
					Label:   "Obsessed. Got it. Watch this performance.",
					NextID:  "aftermath",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:      "aftermath",
			Speaker: "Kai",
			Text:    "That was CINEMA. Okay, round two somewhere else. There's a rooftop, a guestlist, and a guy named Pigeon who owes me a favor. You in?",
			Choices: []Choice{
				{
					Label:   "I'm in. Bottle service. My card.",
					NextID:  "ending_legend",
					Effects: &Effects{MoneyChange: -120, Tags: []string{"highSpend"}},
					Receipt: []ReceiptLine{{Label: "Rooftop bottle service", Cost: 120}},
				},
				{
					Label:   "I'll stay for one more. Just one. Okay, fine.",
					NextID:  "ending_legend",
					Effects: &Effects{PatienceChange: -2, Tags: []string{"stayedTooLong"}},
				},
				{
					Label:   "I'm running for the exit while you're distracted.",
					NextID:  "ending_escape",
					Effects: &Effects{Tags: []string{"leftEarly"}},
				},
			},
		},
		{
			ID:          "ending_legend",
			Speaker:     "Kai",
			Text:        "Somewhere past midnight, Pigeon salutes you.",
			IsEnding:    true,
			EndingTitle: "SUPPORTING CHARACTER",
			EndingText:  "You appear in four strangers' group chats as 'the legend from Tuesday.' Kai already has a nickname for you, which is how you know you'll never be free.",
			EndingReceipt: []ReceiptLine{
				{Label: "Drinks, assorted, regrettable", Cost: 136},
				{Label: "Favor from Pigeon (outstanding)", Cost: 0},
			},
		},
		{
			ID:          "ending_escape",
			Speaker:     "Kai",
			Text:        "You're three blocks away before your phone buzzes: 'iconic exit. calling you tomorrow.'",
			IsEnding:    true,
			EndingTitle: "CREDITS ROLLED EARLY",
			EndingText:  "You escaped the plot. Kai tells the story better without you in it anyway, and in the retelling you flipped the table. Let them have it.",
			EndingReceipt: []ReceiptLine{
				{Label: "One espresso martini", Cost: 16},
				{Label: "Cab home, priceless, well, no", Cost: 22},
			},
		},
	}
}
