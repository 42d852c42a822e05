package handbrake

// presetArgs is the fixed encoding policy: MP4 container optimized for HTTP
// streaming, two-pass x264 at constant quality 16 with a tuned option
// string, peak 30 fps, AAC audio, no crop, auto-anamorphic. It is not
// user-configurable; only the input and output paths vary per invocation.
var presetArgs = []string{
	"--format", "av_mp4",
	"-O",
	"--encoder", "x264",
	"--encopts", "ref=5:analyse=all:rc-lookahead=60:vbv-maxrate=17500:trellis=2:subme=10:bframes=5:level=3.1:direct=auto:vbv-bufsize=17500:b-adapt=2:me=umh:merange=24",
	"--quality", "16",
	"--two-pass",
	"--rate", "30",
	"--pfr",
	"--aencoder", "ca_aac",
	"--crop", "0:0:0:0",
	"--auto-anamorphic",
}

// BuildArgs returns the complete argument slice for one transcode: the
// preset prefix followed by -i input -o output. The returned slice is a
// fresh copy; callers may append to it.
func BuildArgs(input, output string) []string {
	args := make([]string, 0, len(presetArgs)+4)
	args = append(args, presetArgs...)
	args = append(args, "-i", input, "-o", output)
	return args
}
