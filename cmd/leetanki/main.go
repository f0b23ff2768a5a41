package main

import (
	"os"

	"leetanki/cmd/leetanki/commands"
	"leetanki/lib/serviceutil"
	"leetanki/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	// missing telemetry.json5 leaves the no-op otel providers in place
	_, err := telemetry.SetupFromEnv(ctx, "leetanki")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	telemetry.InitSlog(true)
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
