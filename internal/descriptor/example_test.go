package descriptor_test

import (
	"os"

	"metric-descriptor-generator/internal/descriptor"
)

func ExampleRenderer_RenderPath() {
	r := descriptor.NewRenderer()

	_ = r.RenderPath(os.Stdout, ".memory_flow.global.bytes_per_instruction")
	// Output:
	// global_bytes_per_instruction: {
	//     name: 'memory_flow/global/bytes_per_instruction',
	//     display_name: 'memory_flow/global/bytes_per_instruction',
	//     hint: '',
	//     format_function: formatBytes,
	//     help_text: 'This is a detailed explanation something',
	//     lower_better: true
	// },
}
