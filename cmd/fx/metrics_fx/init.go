package metrics_fx

import (
	"go.uber.org/fx"
	"tripplanner/pkg/metrics"
)

var Module = fx.Provide(metrics.New)
