package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

// inlineSeeds cover each token kind and the layout modes at least once.
var inlineSeeds = []string{
	"",
	"if(a){b()}else{c()}",
	"var a=1,b=[1,2,{c:3}],d=function(){return/x/g.test(s)};",
	"switch(x){case 1:a();break;default:b()}",
	"do{i++}while(i<10);for(;;++i){}",
	"x = a ? b : {c: d};",
	"a = b / c / d; e = /=/.exec(f);",
	"#!/usr/bin/env node\n<!-- hide\nf();\n-->",
	"var o = #1={a: #1#};",
	"/** doc\n * more\n */\nfunction f(){}",
	"// line\n/* inline */ g(/* arg */ 1)",
	"s = 'unterminated",
	"}}]) ({[",
	"é = '漢字';  \f",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("testdata", "seeds")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".js" {
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

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
