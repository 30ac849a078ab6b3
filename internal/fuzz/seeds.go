package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addInlineSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.cs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".cs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func addInlineSeeds(f *testing.F) {
	seeds := []string{
		"",
		"var x = (long)1;\n",
		"var y = (ulong)-1L;\n",
		"var z = unchecked((uint)-1);\n",
		"checked { var a = (ulong)1; }\n",
		"var f = (float)1.5; var m = (decimal)2;\n",
		"var h = (long)0x1F; var b = (long)0b101;\n",
		"var s = \"(long)1\"; var c = '(';\n",
		"var v = @\"C:\\path\"; var i = $\"{(long)1}\";\n",
		"// (long)1\n/* (ulong)2 */\n#region (long)3\n#endregion\n",
		"var d = 1.ToString();\n",
		"var e = (long)(1);\n",
		"class C { void M() { var q = (double)1e10; } }\n",
		"var big = (ulong)18446744073709551615;\n",
		"var over = unchecked((ulong)-1L);\n",
		"(long",
		"(long)",
		"(long)-",
		"0x",
		"\"unterminated",
		"'a",
		"/* unterminated",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
