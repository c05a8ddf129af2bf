package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Merge  bool
	Scan   bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("SCRIBAL_DEBUG_MERGE")
	d.Scan = boolEnv("SCRIBAL_DEBUG_SCAN")
	d.Encode = boolEnv("SCRIBAL_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Scan() bool {
	return d.Scan
}
func Encode() bool {
	return d.Encode
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
