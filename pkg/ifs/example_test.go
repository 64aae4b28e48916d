package ifs_test

import (
	"fmt"

	"github.com/willbeason/ifs-fractal/pkg/ifs"
	"github.com/willbeason/ifs-fractal/pkg/transforms"
)

func ExampleGenerate() {
	set, err := transforms.Sierpinsky.Set()
	if err != nil {
		panic(err)
	}

	cloud, err := ifs.Generate(set, 10000, ifs.NewSeeded(1))
	if err != nil {
		panic(err)
	}

	fmt.Println(len(cloud.Points), len(cloud.Counts))
	// Output: 10000 3
}
