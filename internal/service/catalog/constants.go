package catalog

import "time"

const timeLogFormat = time.RFC3339
