// Package bench runs the complex matrix-multiplication benchmark.
//
// A run builds 2^n × 2^n complex128 matrices, multiplies an accumulator by
// an operand a fixed number of times (acc = acc·operand, accumulator on the
// left) and prints the elapsed wall-clock time:
//
//	プログラムの開始！
//	プログラムが終了しました！
//	処理に要した時間は、0.123456 秒でした。
//
// Three presets cover the historical variants:
//
//	identity    identity accumulator, fresh random operand, 1 repetition (default)
//	identity10  identity accumulator, fresh random operand, 10 repetitions
//	random10    random accumulator, one fixed random operand, 10 repetitions
//
// Usage:
//
//	cfg, _ := bench.Preset("random10")
//	cfg.Seed = 42
//	r, _ := bench.NewRunner(cfg, bench.WithOutput(os.Stdout))
//	res, _ := r.Run()
//	fmt.Println(res.GFLOPS)
//
// Accumulate exposes the multiplication loop alone, with injectable
// operands, for callers that want to verify results rather than time them.
package bench
