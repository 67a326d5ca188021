package bootstrap

import (
	"coachdesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module order matters for shutdown: fx stops hooks in reverse, so the stream
// consumer halts before the final flush, and the pool closes after it.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.MailerModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.StreamModule,
)
