package gravlens

var (
	Progress     = false // print [PROGRESS] lines while rendering
	SerialRender = false // disable the worker pool (debugging, determinism checks)
	RecordStates = false // keep the terminal Ray state of every pixel
)
