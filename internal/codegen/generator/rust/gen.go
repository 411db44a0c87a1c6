package rust

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Alia5/rosmsgc/internal/codegen/common"
	"github.com/Alia5/rosmsgc/internal/codegen/meta"
)

// DefaultFileName is the name of the generated Rust source file.
const DefaultFileName = "ros_msg_defs.rs"

// Generate renders every scanned root as a top-level Rust module and returns
// the complete source file.
func Generate(logger *slog.Logger, md *meta.Metadata) ([]byte, error) {
	version, err := common.GetVersion()
	if err != nil {
		return nil, fmt.Errorf("get version: %w", err)
	}

	var b strings.Builder
	b.WriteString(writeFileHeaderRust(version))

	for _, root := range md.Roots {
		logger.Debug("Emitting root module", "module", root.Name)
		src, err := EmitPackage(root)
		if err != nil {
			return nil, fmt.Errorf("emit module %s: %w", root.Name, err)
		}
		if src == "" {
			logger.Warn("Root package holds no messages, skipping", "module", root.Name)
			continue
		}
		b.WriteString(src)
	}

	return []byte(b.String()), nil
}

func writeFileHeaderRust(version string) string {
	return common.GeneratedHeader("//", version) + "\n"
}
