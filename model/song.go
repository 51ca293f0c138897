package model

type Song struct {
	Meta   Meta    `json:"meta"`
	Tracks []Track `json:"tracks"`
}

type Meta struct {
	Title         string  `json:"title"`
	Tempo         float64 `json:"tempo"`
	TimeSignature [2]int  `json:"timeSignature"`
	Tuning        []int   `json:"tuning"`
}

type Track struct {
	Name  string `json:"name"`
	Notes []Note `json:"notes"`
}

// Note covers both pipelines. The tablature pipeline sets ID and always
// resolves String/Fret; the merge pipeline sets Ticks/DurationTicks and
// leaves String/Fret null when the pitch never occurs in the tablature.
type Note struct {
	ID            *int    `json:"id,omitempty"`
	Duration      float64 `json:"duration"`
	DurationTicks *int    `json:"durationTicks,omitempty"`
	Midi          int     `json:"midi"`
	Name          string  `json:"name"`
	Ticks         *int    `json:"ticks,omitempty"`
	Time          float64 `json:"time"`
	Velocity      float64 `json:"velocity"`
	String        *int    `json:"string"`
	Fret          *int    `json:"fret"`
}
