package colonist

import "strings"

// Emotion is the mood label derived from stress and happiness
type Emotion int

const (
	EmotionNeutral Emotion = iota
	EmotionAngry
	EmotionDepressed
	EmotionStressed
	EmotionInspired
	EmotionDeceased
)

// emotionInfo holds the label and speed multipliers of an emotion
type emotionInfo struct {
	Name      string
	WorkSpeed float64
	MoveSpeed float64
}

var emotionTypes = map[Emotion]emotionInfo{
	EmotionNeutral:   {Name: "Neutral", WorkSpeed: 1, MoveSpeed: 1},
	EmotionAngry:     {Name: "Angry", WorkSpeed: 0, MoveSpeed: 1},
	EmotionDepressed: {Name: "Depressed", WorkSpeed: 0.5, MoveSpeed: 0.5},
	EmotionStressed:  {Name: "Stressed", WorkSpeed: 1, MoveSpeed: 1},
	EmotionInspired:  {Name: "Inspired", WorkSpeed: 1.5, MoveSpeed: 1.2},
	EmotionDeceased:  {Name: "Deceased", WorkSpeed: 0, MoveSpeed: 0},
}

func (e Emotion) String() string {
	if info, ok := emotionTypes[e]; ok {
		return info.Name
	}
	return "Unknown"
}

// LabelKey returns the translation key of the emotion label
func (e Emotion) LabelKey() string {
	return "EMOTION_" + strings.ToUpper(e.String())
}

// deriveEmotion applies the emotion thresholds in priority order
func deriveEmotion(stress, happiness float64) Emotion {
	switch {
	case stress > 80:
		return EmotionAngry
	case happiness < 30:
		return EmotionDepressed
	case stress > 50:
		return EmotionStressed
	case happiness > 85:
		return EmotionInspired
	default:
		return EmotionNeutral
	}
}
