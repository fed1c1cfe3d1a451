package dialogue

func seedThemcelNodes() []*Node {
	return []*Node{
		{
			ID:             "start",
			Speaker:        "Avery",
			Text:           "So. The group talks. {RUMOR} That's the file we have on you. Sit, we'll verify it together.",
			DateExpression: "appraising",
			Choices: []Choice{
				{
					Label:  "Verify away. I have nothing to hide.",
					NextID: "spreadsheet_intro",
				},
				{
					Label:   "You keep files on dates? That's a joke, right?",
					NextID:  "spreadsheet_intro",
					Effects: &Effects{PatienceChange: -1},
				},
				{
					Label:   "No. We're not doing a tribunal. New topic.",
					NextID:  "spreadsheet_intro",
					Effects: &Effects{Tags: []string{"boundarySetter"}},
				},
			},
		},
		{
			ID:             "spreadsheet_intro",
			Speaker:        "Avery",
			Text:           "We pooled everyone's date logs into one master spreadsheet. Legibility, friction, narrative fit. It's not personal, it's an algorithm. Everyone agreed to the algorithm.",
			DateExpression: "earnest",
			Choices: []Choice{
				{
					Label:   "Walk me through the columns. I want to analyze it.",
					NextID:  "algorithm_demo",
					Effects: &Effects{Tags: []string{"engagedInSpreadsheet"}},
				},
				{
					Label:  "Did YOU agree to the algorithm?",
					NextID: "algorithm_demo",
				},
				{
					Label:   "I could knock this laptop into the soup. Chaos has a column?",
					NextID:  "algorithm_demo",
					Effects: &Effects{Tags: []string{"chaosAgent"}},
				},
			},
		},
		{
			ID:      "algorithm_demo",
			Speaker: "Avery",
			Text:    "Column C is how predictable you are. Column F is how much trouble you cause. Column R is whether you let the group tell your story for you. Dinner's on the group account, by the way. Order anything.",
			Choices: []Choice{
				{
					Label:   "Then I'm ordering the tower of shellfish.",
					NextID:  "verdict_gate",
					Effects: &Effects{MoneyChange: -85, Tags: []string{"highSpend"}},
					Receipt: []ReceiptLine{{Label: "Shellfish tower (group account, allegedly)", Cost: 85}},
				},
				{
					Label:  "I'll wait and hear the verdict first.",
					NextID: "verdict_gate",
				},
				{
					Label:   "I should leave before the scoring round.",
					NextID:  "leave_interview",
					Effects: &Effects{Tags: []string{"leftEarly"}},
				},
			},
		},
		{
			ID:             "verdict_gate",
			Speaker:        "Avery",
			Text:           "The model has everything it needs. Last chance to object to the methodology. After this, the algorithm decides where you belong.",
			DateExpression: "neutral",
			Choices: []Choice{
				{
					Label:  "Run it. Let's see where I land.",
					NextID: SentinelNextID,
				},
				{
					Label:   "For the record: I refuse the premise. Now run it.",
					NextID:  SentinelNextID,
					Effects: &Effects{Tags: []string{"boundarySetter"}},
				},
			},
		},
		{
			ID:          "leave_interview",
			Speaker:     "Avery",
			Text:        "Noted: subject declined evaluation.",
			IsEnding:    true,
			EndingTitle: "UNSCORED",
			EndingText:  "You walk out before the model finishes. Somewhere a cell in column C turns red. It's the freest you've felt in three parts.",
			EndingReceipt: []ReceiptLine{
				{Label: "Bread, eaten defiantly", Cost: 0},
				{Label: "Evaluation fee, waived", Cost: 0},
			},
		},
		{
			ID:          "ending_onboarded",
			Speaker:     "Avery",
			Text:        "The laptop chimes, approvingly. \"{INTEGRATION_RESULT}\"",
			IsEnding:    true,
			EndingTitle: "ONBOARDED",
			EndingText:  "The group adds you to four chats, a shared calendar, and the master spreadsheet. You are legible now. You are known. There is no unsubscribe.",
			EndingReceipt: []ReceiptLine{
				{Label: "Onboarding dinner", Cost: 52},
				{Label: "Your own row, column A", Cost: 0},
			},
		},
		{
			ID:          "ending_not_a_fit",
			Speaker:     "Avery",
			Text:        "The laptop buzzes, regretfully. \"{INTEGRATION_RESULT}\"",
			IsEnding:    true,
			EndingTitle: "NOT A FIT",
			EndingText:  "The group wishes you well on your journey. The spreadsheet archives your row. You remain, gloriously, unparseable.",
			EndingReceipt: []ReceiptLine{
				{Label: "Consolation appetizer", Cost: 14},
				{Label: "Archived row, column C, red", Cost: 0},
			},
		},
	}
}
