package starter

import (
	"github.com/architect/skillforge/internal/tracking/models"
)

// Starter content shipped with a fresh database: one skill and a deck of
// flashcards spanning all six mastery levels.

const (
	SkillName        = "Drumming Fundamentals"
	SkillDescription = "Master essential drumming techniques, from basic rudiments to creative expression."
	SkillIcon        = "asset:///drumming/drum_icon.png"
)

// Card is one starter flashcard before it is bound to a skill id.
type Card struct {
	Front string
	Back  string
	Level models.LearningLevel
}

// Cards returns the starter deck in level order.
func Cards() []Card {
	return []Card{
		// Level 1 – recall facts
		{
			Front: "What is a paradiddle?",
			Back:  "A paradiddle is a drum rudiment with the sticking pattern: RLRR LRLL",
			Level: models.LevelRemember,
		},
		{
			Front: "What is a flam?",
			Back:  "A flam is a grace note played just before the main stroke, creating a thicker sound.",
			Level: models.LevelRemember,
		},
		{
			Front: "What is a drag?",
			Back:  "A drag consists of two grace notes (a buzz) followed by a main stroke.",
			Level: models.LevelRemember,
		},
		{
			Front: "How many beats does a whole note get in 4/4 time?",
			Back:  "A whole note gets 4 beats in 4/4 time.",
			Level: models.LevelRemember,
		},
		{
			Front: "What does 'BPM' stand for?",
			Back:  "BPM stands for Beats Per Minute — the standard measurement of tempo.",
			Level: models.LevelRemember,
		},

		// Level 2 – explain concepts
		{
			Front: "Explain why matched grip and traditional grip produce different sounds.",
			Back:  "Matched grip provides equal power from both hands. Traditional grip angles the left stick differently, producing a lighter tone ideal for jazz dynamics.",
			Level: models.LevelUnderstand,
		},
		{
			Front: "Why are rudiments considered the foundation of drumming?",
			Back:  "Rudiments are standardized sticking patterns that build hand coordination, speed, and control. Complex patterns are combinations of rudiments.",
			Level: models.LevelUnderstand,
		},
		{
			Front: "Explain the difference between simple and compound time signatures.",
			Back:  "Simple time (e.g., 4/4) divides beats into two equal parts. Compound time (e.g., 6/8) divides beats into three, creating a swing or shuffle feel.",
			Level: models.LevelUnderstand,
		},
		{
			Front: "What is the role of ghost notes in a groove?",
			Back:  "Ghost notes are very soft snare hits between main beats that add texture and feel to a groove without changing the core rhythm.",
			Level: models.LevelUnderstand,
		},

		// Level 3 – use in new situations
		{
			Front: "Play a basic rock beat at 80 BPM for one minute without stopping.",
			Back:  "Basic rock beat: Hi-hat on 8ths, snare on 2 & 4, kick on 1 & 3. Focus on steady tempo and even hi-hat volume.",
			Level: models.LevelApply,
		},
		{
			Front: "Apply a paradiddle pattern to the drum kit by moving the right hand between hi-hat and ride.",
			Back:  "RLRR on hi-hat/snare, then LRLL moving R to ride cymbal. This creates melodic variation while maintaining the rudiment.",
			Level: models.LevelApply,
		},
		{
			Front: "Play a shuffle groove at 100 BPM.",
			Back:  "Shuffle feel: swing the 8th notes (long-short pattern), snare on 2 & 4, kick on 1 & 3. The triplet feel is key.",
			Level: models.LevelApply,
		},
		{
			Front: "Demonstrate dynamic control: play 8 bars, crescendo from pp to ff.",
			Back:  "Start with stick height ~1 inch (pp), gradually raise to ~12 inches (ff) over 8 bars. Keep tempo constant while increasing volume.",
			Level: models.LevelApply,
		},
		{
			Front: "Play a four-bar phrase using flams on beats 2 and 4.",
			Back:  "Replace regular snare hits with flams on beats 2 and 4. The grace note should be noticeably softer than the primary stroke.",
			Level: models.LevelApply,
		},

		// Level 4 – draw connections
		{
			Front: "Compare a standard rock beat with a half-time feel. What changes and why?",
			Back:  "Half-time moves the snare from beats 2 & 4 to beat 3 only, doubling the perceived bar length. This creates a heavier, slower feel without changing tempo.",
			Level: models.LevelAnalyze,
		},
		{
			Front: "Listen to a funk groove and identify which ghost notes are essential to the feel.",
			Back:  "Essential ghost notes typically fall on the 'e' and 'a' of beats (16th note subdivisions). Removing them flattens the groove. The ones closest to backbeats (2 & 4) are most critical.",
			Level: models.LevelAnalyze,
		},
		{
			Front: "Analyze why a 12/8 blues shuffle feels different from a straight 4/4 rock beat at the same tempo.",
			Back:  "12/8 groups pulses in threes (compound meter), creating a lilt/swing. 4/4 rock uses straight 8ths (simple meter). The subdivision changes the underlying feel entirely.",
			Level: models.LevelAnalyze,
		},
		{
			Front: "Break down a linear drum fill and explain why no two limbs hit simultaneously.",
			Back:  "Linear patterns create clarity by separating each voice. This produces a melodic, flowing fill where each drum speaks individually rather than being masked by simultaneous hits.",
			Level: models.LevelAnalyze,
		},

		// Level 5 – justify decisions
		{
			Front: "A band asks you to choose between a busy fill and a simple crash into the chorus. Justify your choice.",
			Back:  "A simple crash usually serves the music better — it marks the section change clearly and lets the band's energy carry the transition. Busy fills can distract from the song's momentum.",
			Level: models.LevelEvaluate,
		},
		{
			Front: "Evaluate whether a click track helps or hurts a live performance.",
			Back:  "Click tracks ensure consistency and sync with backing tracks, but can reduce natural dynamics and feel. Best used when syncing is required; optional for purely acoustic performances where push/pull enhances emotion.",
			Level: models.LevelEvaluate,
		},
		{
			Front: "Critique a drum solo that uses only speed and no dynamics. What's missing?",
			Back:  "Speed alone lacks musicality. Effective solos use contrast: loud/soft, fast/slow, dense/sparse. Dynamics create tension and release, making the solo a journey rather than an endurance test.",
			Level: models.LevelEvaluate,
		},

		// Level 6 – produce original work
		{
			Front: "Compose a 4-bar drum intro for a song that starts quiet and builds.",
			Back:  "Example: Bar 1 — cross-stick quarter notes. Bar 2 — add hi-hat 8ths. Bar 3 — open hi-hat, add kick. Bar 4 — full groove with crash on beat 1 of the next section.",
			Level: models.LevelCreate,
		},
		{
			Front: "Create a unique groove by combining elements from two different genres (e.g., jazz + funk).",
			Back:  "Example: Use a jazz ride pattern (swing 8ths on ride) with a funk kick/snare pattern (syncopated 16ths on kick, ghost notes on snare). The contrast creates a fresh hybrid feel.",
			Level: models.LevelCreate,
		},
		{
			Front: "Design a 2-minute practice routine that targets your weakest rudiment.",
			Back:  "Structure: 30s slow singles (warm-up) → 30s the weak rudiment at 60% speed → 30s at 80% speed → 30s alternating the weak rudiment with a strong one. Log BPM achieved.",
			Level: models.LevelCreate,
		},
		{
			Front: "Write a drum chart for an original 8-bar verse section.",
			Back:  "Use standard notation or shorthand. Include: time signature, tempo, kick pattern, snare placement, hi-hat/ride choice, any fills, and dynamic markings. The chart should be readable by another drummer.",
			Level: models.LevelCreate,
		},
	}
}
