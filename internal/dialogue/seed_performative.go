package dialogue

func seedPerformativeNodes() []*Node {
	return []*Node{
		{
			ID:             "start",
			Speaker:        "Jules",
			Text:           "Don't sit yet. The light hits the table better from the other chair. Okay. Now. Hi. I'm so present right now. Are you present?",
			DateExpression: "radiant",
			Choices: []Choice{
				{
					Label:  "Extremely present. Witnessing everything.",
					NextID: "photo",
				},
				{
					Label:   "Is this chair for me or for the camera?",
					NextID:  "photo",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:      "photo",
			Speaker: "Jules",
			Text:    "Tiny thing: my followers eat when I eat. Can you hold the phone? You have steady hands. I can tell. It's your whole energy.",
			Choices: []Choice{
				{
					Label:   "Sure, fine, I'm the tripod now.",
					NextID:  "content",
					Effects: &Effects{PatienceChange: -1},
				},
				{
					Label:   "No phones. Boundary. Just us.",
					NextID:  "content",
					Effects: &Effects{Tags: []string{"boundarySetter"}},
				},
				{
					Label:  "Only if I get a director credit. Joke. Half a joke.",
					NextID: "content",
				},
			},
		},
		{
			ID:             "content",
			Speaker:        "Jules",
			Text:           "The algorithm has been brutal to me this week. Engagement is down nine percent. Do you know what it's like to be down nine percent as a person?",
			DateExpression: "wounded",
			Choices: []Choice{
				{
					Label:   "Walk me through the analytics. What's the data say?",
					NextID:  "candles",
					Effects: &Effects{Tags: []string{"engagedInSpreadsheet"}},
				},
				{
					Label:  "You're up one hundred percent at this table.",
					NextID: "candles",
				},
				{
					Label:   "I'm gonna go. This table seats three: you, me, and the brand.",
					NextID:  "leave_scene",
					Effects: &Effects{Tags: []string{"leftEarly"}},
				},
			},
		},
		{
			ID:      "candles",
			Speaker: "Jules",
			Text:    "The tasting menu is forty-eight but it's basically free exposure for both of us. Waiter's coming. Decide like someone who believes in us.",
			Choices: []Choice{
				{
					Label:   "Two tasting menus. Tell the chef we believe.",
					NextID:  "ending_collab",
					Effects: &Effects{MoneyChange: -96, Tags: []string{"highSpend"}},
					Receipt: []ReceiptLine{{Label: "Tasting menu x2 (exposure)", Cost: 96}},
				},
				{
					Label:   "I'll wait right here while you film the water glass.",
					NextID:  "ending_collab",
					Effects: &Effects{PatienceChange: -2, Tags: []string{"stayedTooLong"}},
				},
				{
					Label:   "No. We're ordering like civilians or I'm out.",
					NextID:  "ending_unplugged",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:          "leave_scene",
			Speaker:     "Jules",
			Text:        "Wait—can you storm out again? The first take was blurry.",
			IsEnding:    true,
			EndingTitle: "LEFT ON READ, IN PERSON",
			EndingText:  "Your exit becomes a voiceover reel titled 'protecting my peace.' It performs nine percent better than last week.",
			EndingReceipt: []ReceiptLine{
				{Label: "Sparkling water (filmed, unsipped)", Cost: 7},
				{Label: "Cameo appearance, uncredited", Cost: 0},
			},
		},
		{
			ID:          "ending_collab",
			Speaker:     "Jules",
			Text:        "Jules tags the restaurant, the chef, the candle, and—generously—you.",
			IsEnding:    true,
			EndingTitle: "SOFT LAUNCHED",
			EndingText:  "You appear in the third slide as 'good vibes only.' Your arm has never looked so editorial. The relationship, such as it is, is content now.",
			EndingReceipt: []ReceiptLine{
				{Label: "Tasting menu x2", Cost: 96},
				{Label: "Ring light rental, amortized", Cost: 0},
			},
		},
		{
			ID:          "ending_unplugged",
			Speaker:     "Jules",
			Text:        "Jules puts the phone face down. The table falls silent, unobserved.",
			IsEnding:    true,
			EndingTitle: "ZERO LIKES, ONE PERSON",
			EndingText:  "For eleven whole minutes, Jules makes eye contact with a human being. It's terrifying for them. You count it as a win.",
			EndingReceipt: []ReceiptLine{
				{Label: "Two civilian entrees", Cost: 38},
				{Label: "Eleven minutes of eye contact", Cost: 0},
			},
		},
	}
}
