package utils

import "time"

// ManilaTZ is the fallback when the zoneinfo database is unavailable,
// e.g. on scratch container images. Manila has no DST.
var ManilaTZ = time.FixedZone("UTC+8", 8*60*60)
