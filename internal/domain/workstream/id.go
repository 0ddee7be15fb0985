package workstream

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const idSuffixLen = 9

// newID returns an identifier of the form ws-<unix-millis>-<random suffix>.
// The suffix comes from a v4 UUID, so collisions are negligible; the service
// still double-checks against the index before inserting.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:idSuffixLen]
	return fmt.Sprintf("ws-%d-%s", time.Now().UnixMilli(), suffix)
}
