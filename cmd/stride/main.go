// Package main provides the Stride demo CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/stride-ml/stride/tensor1d"
	"github.com/stride-ml/stride/tensor2d"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Stride %s\n", version)
			return
		case "demo1d":
			demo1d()
			return
		case "demo2d":
			demo2d()
			return
		default:
			logrus.Fatalf("unknown command %q", os.Args[1])
		}
	}

	fmt.Println("Stride - strided tensors for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo1d     Walk through 1-D slicing and views")
	fmt.Println("  demo2d     Walk through 2-D reshape and matrix product")
}

// demo1d walks through 1-D creation, slicing of slices and negative
// indexing.
func demo1d() {
	t, err := tensor1d.Arange(20)
	if err != nil {
		logrus.Fatal("arange failed: ", err)
	}
	defer t.Release()
	fmt.Println(t)

	// t[5:15]
	s, err := t.Slice(5, 15, 1)
	if err != nil {
		logrus.Fatal("slice failed: ", err)
	}
	defer s.Release()
	fmt.Println(s)

	// s[2:7:2]
	ss, err := s.Slice(2, 7, 2)
	if err != nil {
		logrus.Fatal("slice failed: ", err)
	}
	defer ss.Release()
	fmt.Println(ss)

	last, err := ss.Get(-1)
	if err != nil {
		logrus.Fatal("get failed: ", err)
	}
	fmt.Printf("ss[-1] = %.1f\n", last)
}

// demo2d walks through reshaping one sequence into two shapes and taking
// their matrix product.
func demo2d() {
	t, err := tensor2d.Arange(10)
	if err != nil {
		logrus.Fatal("arange failed: ", err)
	}
	defer t.Release()

	t2, err := t.Reshape(5, 2)
	if err != nil {
		logrus.Fatal("reshape failed: ", err)
	}
	defer t2.Release()
	fmt.Printf("t2 shape: (%d, %d)\n", t2.Rows(), t2.Cols())
	fmt.Println(t2)

	t3, err := t.Reshape(2, 5)
	if err != nil {
		logrus.Fatal("reshape failed: ", err)
	}
	defer t3.Release()
	fmt.Printf("t3 shape: (%d, %d)\n", t3.Rows(), t3.Cols())
	fmt.Println(t3)

	p, err := tensor2d.Dot(t2, t3)
	if err != nil {
		logrus.Fatal("dot failed: ", err)
	}
	defer p.Release()
	fmt.Println("dot(t2, t3)")
	fmt.Println(p)
}
