package dialogue

func seedIncelNodes() []*Node {
	return []*Node{
		{
			ID:             "start",
			Speaker:        "Devon",
			Text:           "You're five minutes late. I logged it. Not in a weird way. I keep a log of everything, actually, it's called discipline.",
			DateExpression: "smug",
			Choices: []Choice{
				{
					Label:  "Sorry. Parking was a nightmare.",
					NextID: "ordering",
				},
				{
					Label:   "You keep a log? Of dates?",
					NextID:  "the_log",
					Effects: &Effects{PatienceChange: -1},
				},
				{
					Label:   "I don't do logs. Hard no.",
					NextID:  "ordering",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:      "the_log",
			Speaker: "Devon",
			Text:    "Dates, gym numbers, who wronged me online. The data doesn't lie. People lie. Spreadsheets are loyal.",
			Choices: []Choice{
				{
					Label:   "Show me the spreadsheet.",
					NextID:  "ordering",
					Effects: &Effects{Tags: []string{"engagedInSpreadsheet"}},
				},
				{
					Label:  "Okay. Sure. Let's just order.",
					NextID: "ordering",
				},
			},
		},
		{
			ID:             "ordering",
			Speaker:        "Devon",
			Text:           "I already ordered for both of us. Steak for me, side salad for you. It's about optics. You're welcome.",
			DateExpression: "smug",
			Choices: []Choice{
				{
					Label:   "That's funny. Genuinely a joke, right?",
					NextID:  "rant",
					Effects: &Effects{PatienceChange: -1},
				},
				{
					Label:   "No. Cancel the salad. I order for myself.",
					NextID:  "rant",
					Effects: &Effects{PatienceChange: -1},
					Receipt: []ReceiptLine{{Label: "Ribeye (his)", Cost: 58}},
				},
				{
					Label:   "Fine. Salad's fine.",
					NextID:  "rant",
					Receipt: []ReceiptLine{{Label: "Side salad (yours)", Cost: 9}},
				},
			},
		},
		{
			ID:             "rant",
			Speaker:        "Devon",
			Text:           "Society punishes honest men like me. I did the math on attraction. It's rigged. I have charts. Do you want to see the charts? Everyone wants to see the charts.",
			DateExpression: "intense",
			Choices: []Choice{
				{
					Label:   "I'm going to the bathroom. Back in never.",
					NextID:  "leave_early",
					Effects: &Effects{Tags: []string{"leftEarly"}},
				},
				{
					Label:   "I'll stay and listen. Go on.",
					NextID:  "check",
					Effects: &Effects{PatienceChange: -2, Tags: []string{"stayedTooLong"}},
				},
				{
					Label:   "Stop. New topic or I walk.",
					NextID:  "check",
					Effects: &Effects{PatienceChange: -1},
				},
			},
		},
		{
			ID:      "check",
			Speaker: "Devon",
			Text:    "The check's here. I'm low on liquidity this month. Market conditions. You understand.",
			Choices: []Choice{
				{
					Label:   "I'll cover it.",
					NextID:  "ending_paid",
					Effects: &Effects{MoneyChange: -67, Tags: []string{"highSpend"}},
					Receipt: []ReceiptLine{{Label: "Devon's market conditions", Cost: 67}},
				},
				{
					Label:   "We split it. Non-negotiable.",
					NextID:  "ending_split",
					Effects: &Effects{MoneyChange: -34},
					Receipt: []ReceiptLine{{Label: "Your half, on principle", Cost: 34}},
				},
			},
		},
		{
			ID:          "leave_early",
			Speaker:     "Devon",
			Text:        "Wait, the charts—",
			IsEnding:    true,
			EndingTitle: "STRATEGIC WITHDRAWAL",
			EndingText:  "You climb out the bathroom window. The night air has never tasted so free.",
			EndingReceipt: []ReceiptLine{
				{Label: "One (1) untouched side salad", Cost: 9},
				{Label: "Dignity", Cost: 0},
			},
		},
		{
			ID:          "ending_paid",
			Speaker:     "Devon",
			Text:        "He pockets the receipt 'for the log.'",
			IsEnding:    true,
			EndingTitle: "ANGEL INVESTOR",
			EndingText:  "You funded the worst startup of all time: Devon. He rates the date 9/10 on his spreadsheet. You were the missing point.",
			EndingReceipt: []ReceiptLine{
				{Label: "Entire dinner", Cost: 67},
				{Label: "A lecture about rigged math", Cost: 0},
			},
		},
		{
			ID:          "ending_split",
			Speaker:     "Devon",
			Text:        "He counts the bill to the cent. Twice.",
			IsEnding:    true,
			EndingTitle: "ITEMIZED FAREWELL",
			EndingText:  "He Venmo-requests you for the bread basket afterward. You decline it. He logs that, too.",
			EndingReceipt: []ReceiptLine{
				{Label: "Your half", Cost: 34},
				{Label: "Bread basket dispute (pending)", Cost: 0},
			},
		},
	}
}
