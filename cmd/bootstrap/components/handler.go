package components

import (
	"coachdesk/internal/handler"
	"coachdesk/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNotificationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
