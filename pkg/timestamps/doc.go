// Package timestamps records points in time and reports durations between
// them.
//
// # Architecture
//
// Timestamps keeps an ordered list of times with optional unique names.
// Durations are computed between references made with At (index, negative
// from the end) or Named. Collections can be merged, exported as a
// table.Table, CSV or YAML. StepTimer builds on Timestamps to time steps of
// a pipeline and report them through a logger.Messenger.
//
// # Usage
//
//	timer := timestamps.NewStepTimer("Took:", logger.NewMessenger())
//	err := timer.TimeStep(4, "Loaded data:", func() error {
//		data, err = table.ReadCSVFile(path, table.DefaultImportOptions())
//		return err
//	})
//	total, _ := timer.TotalTime()
//	fmt.Println(timestamps.FormatHHMMSS(total))
//
// # Error Handling
//
// Lookups fail with ErrIndexOutOfRange or ErrNameNotFound. Took fails with
// ErrNegativeDuration when asked to.
package timestamps
