package clipboard

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"os/exec"
	"strings"
)

// writeRich stores both representations in one pasteboard record through
// osascript. Hex data literals avoid quoting issues in the script.
func writeRich(ctx context.Context, it Item) error {
	cmd := exec.CommandContext(ctx, "osascript", "-e", richScript(it))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("osascript: %w: %s", err, msg)
		}
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}

func richScript(it Item) string {
	return fmt.Sprintf(
		"set the clipboard to {«class HTML»:«data HTML%s», «class utf8»:«data utf8%s»}",
		strings.ToUpper(hex.EncodeToString([]byte(it.HTML))),
		strings.ToUpper(hex.EncodeToString([]byte(it.Text))),
	)
}
