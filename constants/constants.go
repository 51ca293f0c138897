package constants

import "os"

// PercussionChannel is the MIDI channel reserved for drums.
const PercussionChannel = 9

// QuarterTicks is the tick resolution of a quarter note in Guitar Pro files.
const QuarterTicks = 960

func GetInputDir() string {
	path := os.Getenv("FRETCAST_INPUT_PATH")
	if path != "" {
		return path
	}
	return "./data"
}

func GetOutputDir() string {
	path := os.Getenv("FRETCAST_OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./public/data"
}

func GetBucket() string {
	bucket := os.Getenv("FRETCAST_BUCKET")
	if bucket == "" {
		panic("FRETCAST_BUCKET environment variable is not set!")
	}
	return bucket
}

func GetRegion() string {
	region := os.Getenv("FRETCAST_REGION")
	if region != "" {
		return region
	}
	return "us-east-1"
}
