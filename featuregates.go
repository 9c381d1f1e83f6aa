// Copyright The OpenTelemetry Authors
// SPDX-License-Identifier: Apache-2.0

package logsview // import "go.opentelemetry.io/collector/logsview"

import "go.opentelemetry.io/collector/featuregate"

// StrictWireTypesGate makes decoders reject payloads containing malformed
// fields instead of silently ignoring the remainder of the enclosing message.
var StrictWireTypesGate = featuregate.GlobalRegistry().MustRegister(
	"logsview.strictWireTypes",
	featuregate.StageAlpha,
	featuregate.WithRegisterDescription("When enabled, decoders validate the whole payload and reject malformed fields instead of truncating the enclosing message."),
	featuregate.WithRegisterFromVersion("v0.1.0"),
)

// LazyRecordFieldCacheGate controls whether lazy log record views memoize the
// positions of their fields on first access.
var LazyRecordFieldCacheGate = featuregate.GlobalRegistry().MustRegister(
	"logsview.lazyRecordFieldCache",
	featuregate.StageBeta,
	featuregate.WithRegisterDescription("When enabled, lazy log record views scan their fields once and serve later lookups from a cache."),
	featuregate.WithRegisterFromVersion("v0.1.0"),
)
