package setmap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/setmap/pkg/constants"
	"github.com/agentstation/setmap/pkg/errors"
	"github.com/agentstation/setmap/pkg/sets"
)

// setdexLabels maps each generation to the game-pair abbreviation used in
// the calculator's variable names.
var setdexLabels = map[int]string{
	1: "RBY",
	2: "GSC",
	3: "ADV",
	4: "DPP",
	5: "BW",
	6: "XY",
	7: "SM",
	8: "SS",
	9: "SV",
}

// checkOutputDir verifies dir exists and is a directory.
func checkOutputDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return errors.WrapIO("stat", dir, err)
	}
	if !info.IsDir() {
		return errors.NewIOError("write", dir, fmt.Errorf("not a directory"))
	}
	return nil
}

// writeArtifact serializes one generation's calc set map into
// <dir>/gen<N>.js as a single JavaScript variable assignment and returns
// the written path. JSON map keys serialize in sorted order, so artifact
// bytes are stable across runs.
func writeArtifact(dir string, gen int, setdex sets.SetDex) (string, error) {
	label, ok := setdexLabels[gen]
	if !ok {
		return "", fmt.Errorf("no setdex label for generation %d", gen)
	}

	if setdex == nil {
		setdex = sets.SetDex{}
	}
	body, err := json.Marshal(setdex)
	if err != nil {
		return "", errors.WrapParse("json", fmt.Sprintf("gen%d setdex", gen), err)
	}

	path := filepath.Join(dir, fmt.Sprintf("gen%d.js", gen))
	content := fmt.Sprintf("var SETDEX_%s = %s;\n", label, body)
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return "", errors.WrapIO("write", path, err)
	}
	return path, nil
}
