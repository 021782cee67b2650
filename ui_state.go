package main

type mode int

const (
	modeSelect mode = iota
	modeStats
	modeRaw
)

func (m mode) String() string {
	switch m {
	case modeSelect:
		return "SELECT"
	case modeStats:
		return "STATS"
	case modeRaw:
		return "RAW"
	default:
		return "NORMAL"
	}
}

type uiState struct {
	mode       mode
	selection  selectionUI
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int
	lastDir    string
}
