// Package zmatbench times repeated multiplication of large complex dense
// matrices and reports the elapsed wall-clock time.
//
// 🚀 What is zmatbench?
//
//	A small benchmark harness around complex128 GEMM:
//		• Matrix storage: row-major Dense with bounds-checked access
//		• Kernels: gonum's Zgemm (default) or a reference triple loop
//		• Runs: identity or random seeding, fixed repetition count, seeded RNG
//		• Output: fixed console banners, optional JSON report and Prometheus textfile
//
// Everything is organized under three packages:
//
//	matrix/         Dense type, constructors, seeded fills, Mul/MulInto/MulInPlace, Trace
//	bench/          presets, Config, Accumulate, Runner, banners, report, metrics
//	cmd/zmatbench/  cobra/viper command line (flags, ZMATBENCH_* env, --config file)
//
// Quick start:
//
//	go run ./cmd/zmatbench --preset random10 --exponent 9
//
// prints
//
//	プログラムの開始！
//	プログラムが終了しました！
//	処理に要した時間は、0.123456 秒でした。
package zmatbench
