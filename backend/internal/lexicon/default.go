package lexicon

// Default returns the built-in crisis lexicon. Patterns are stored in
// normalized form: lowercase, single spaces, apostrophes kept, no other
// punctuation. The overlay loader can replace this wholesale, but a service
// with no lexicon directory runs on these tables.
//
// Phone-line operators and clinicians review these lists; keep them plain
// phrase tables, never regex syntax.
func Default() *Lexicon {
	return &Lexicon{
		Version: "1.0.0",
		Categories: []Category{
			{
				Name:     "immediate_risk",
				Severity: "critical",
				// Direct statements, method mentions and finality statements
				// that signal immediate danger.
				Patterns: []string{
					"kill myself", "end my life", "suicide", "want to die",
					"going to kill myself", "plan to die", "planning to die",
					"going to end it", "end it all", "end it",
					"snuff myself", "do myself in", "top myself", "off myself",
					"done with life",
					"jump off", "overdose", "cut my wrists",
					"hang myself", "hanging myself",
					"goodbye forever", "won't be here tomorrow",
					"final message", "this is goodbye",
				},
				CheckNegation: true,
			},
			{
				Name:     "serious_ideation",
				Severity: "high",
				Patterns: []string{
					"don't want to live", "can't go on", "no reason to live",
					"better off dead", "world better without me",
					"shouldn't be here", "wish i was dead", "wish i wasn't here",
					"don't want to be here anymore", "can't do this anymore",
					"too much to bear", "can't take it anymore",
					"rather be dead", "had enough of life", "done with it all",
					"can't cope", "end of my tether",
					"burden on everyone", "tired of being a burden",
					"better off without me",
				},
				CheckNegation: true,
			},
			{
				Name:     "self_harm",
				Severity: "medium",
				Patterns: []string{
					"hurt myself", "harm myself", "cut myself", "cutting myself",
					"burn myself", "punish myself", "self harm",
					"hate myself", "worthless", "waste of space",
					"hopeless", "no hope", "give up", "giving up",
					"pointless", "no point", "what's the point",
					"can't see a way out", "trapped", "no escape", "no future",
					"nothing left", "empty inside", "dead inside",
				},
				CheckNegation: true,
			},
			{
				Name:     "passive_ideation",
				Severity: "low",
				Patterns: []string{
					"shouldn't exist", "disappear", "fade away",
					"stop existing", "not be here", "be gone",
					"wish i wasn't around",
				},
				CheckNegation: true,
			},
		},
		Modifiers: []ModifierFamily{
			{
				Name: "substance",
				Patterns: []string{
					"drunk", "drinking", "pills", "alcohol", "drugs",
					"wasted", "stoned",
				},
			},
			{
				Name: "isolation",
				Patterns: []string{
					"alone", "no one", "nobody", "by myself", "isolated",
					"on my own",
				},
			},
			{
				Name: "means",
				Patterns: []string{
					"gun", "pills", "bridge", "rope", "blade", "knife",
					"razor",
				},
			},
			{
				Name: "finality",
				Patterns: []string{
					"goodbye", "last time", "final", "forever", "never again",
					"given away", "giving away", "saying goodbye",
				},
			},
		},
		// Cues are matched against the token window immediately before a
		// keyword hit. Multi-word cues are allowed.
		NegationCues: []string{
			"not", "never", "no longer", "don't", "dont", "doesn't",
			"won't", "wont", "wouldn't", "wouldn't ever", "don't want to",
			"not going to", "no plans to", "stopped", "quit", "used to",
		},
		Emotions: []EmotionLabel{
			{Name: "neutral", Rank: 0, Keywords: map[string]float64{}},
			{Name: "anxious", Rank: 1, Keywords: map[string]float64{
				"anxious": 0.5, "worried": 0.4, "panic": 0.6, "panicking": 0.6,
				"scared": 0.5, "on edge": 0.4, "can't relax": 0.4, "nervous": 0.4,
			}},
			{Name: "angry", Rank: 2, Keywords: map[string]float64{
				"angry": 0.5, "furious": 0.6, "rage": 0.6, "pissed off": 0.5,
				"fed up": 0.4, "sick of": 0.4,
			}},
			{Name: "sad", Rank: 3, Keywords: map[string]float64{
				"sad": 0.5, "crying": 0.5, "tears": 0.4, "lonely": 0.5,
				"grief": 0.5, "heartbroken": 0.6, "miss him": 0.4, "miss her": 0.4,
			}},
			{Name: "depressed", Rank: 4, Keywords: map[string]float64{
				"depressed": 0.7, "depression": 0.6, "empty": 0.5, "numb": 0.5,
				"exhausted": 0.4, "no energy": 0.4, "dark place": 0.6,
				"can't get out of bed": 0.6,
			}},
			{Name: "hopeless", Rank: 5, Keywords: map[string]float64{
				"hopeless": 0.8, "no hope": 0.8, "pointless": 0.6,
				"no future": 0.7, "nothing matters": 0.7, "no way out": 0.7,
				"given up": 0.7,
			}},
		},
	}
}
