// SPDX-License-Identifier: MIT

// Command zmatbench times repeated multiplication of large complex dense
// matrices.
//
// With no arguments it runs the default preset (512×512, identity
// accumulator, one multiplication) and prints three lines to stdout:
//
//	プログラムの開始！
//	プログラムが終了しました！
//	処理に要した時間は、0.123456 秒でした。
//
// # Usage
//
//	zmatbench                          # default preset
//	zmatbench --preset random10        # two random matrices, 10 multiplications
//	zmatbench --exponent 10 -r 3       # 1024×1024, 3 multiplications
//	zmatbench presets                  # list presets
//	zmatbench config --preset random10 # print the resolved configuration
//
// Every flag can also be set through a ZMATBENCH_* environment variable
// (ZMATBENCH_LOG_LEVEL=debug) or a YAML/TOML file passed with --config.
// Logs go to stderr; stdout carries only the banners.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
