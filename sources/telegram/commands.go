package telegram

// SummaryCmd asks for a summary of the linked video. The link may be
// omitted when the command replies to a message containing one.
type SummaryCmd struct {
	URL string `arg:"" optional:"" name:"url" help:"YouTube link to summarize"`
}

// TranscriptCmd asks for a cleaned-up transcript of the linked video.
type TranscriptCmd struct {
	URL string `arg:"" optional:"" name:"url" help:"YouTube link to transcribe"`
}
