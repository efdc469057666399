package main

import (
	"fmt"
	vm "local/vector_math"
	"log"
	"os"
	"runtime"
)

const PROGRAM_NAME = "Vector demo"

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(os.Stdout)
	log.Printf("Starting %s", PROGRAM_NAME)
	log.Printf("Using GoLang: [%s]", runtime.Version())
}

func printData(d vm.View) {
	fmt.Print("Data of v1: (")
	for i := 0; i < d.Len(); i++ {
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(d.At(i))
	}
	fmt.Println(")")
}

func demoVec2() {
	fmt.Println("VECTOR 2")
	v1 := vm.NewVec2(3, 4)

	fmt.Print("v3: ")
	v1.Add(vm.NewVec2(1, 2)).Print(os.Stdout)
	fmt.Print("v4: ")
	v1.Sub(vm.NewVec2(0.5, 0.5)).Print(os.Stdout)
	fmt.Print("v5: ")
	v1.ScalarMul(2).Print(os.Stdout)
	fmt.Println("Magnitude of v1:", v1.Magnitude())
	fmt.Print("v6 (normalized): ")
	v1.Normalize().Print(os.Stdout)
	fmt.Print("zero (normalized): ")
	vm.Vec2{}.Normalize().Print(os.Stdout)
	printData(v1.Data())
}

func demoVec3() {
	fmt.Println("VECTOR 3")
	v1 := vm.NewVec3(3, 4, 5)

	fmt.Print("v3: ")
	v1.Add(vm.NewVec3(1, 2, 3)).Print(os.Stdout)
	fmt.Print("v4: ")
	v1.Sub(vm.NewVec3(0.5, 0.5, 0.5)).Print(os.Stdout)
	fmt.Print("v5: ")
	v1.ScalarMul(2).Print(os.Stdout)
	fmt.Println("Magnitude of v1:", v1.Magnitude())
	fmt.Print("v6 (normalized): ")
	v1.Normalize().Print(os.Stdout)
	printData(v1.Data())
}

func demoVec4() {
	fmt.Println("VECTOR 4")
	v1 := vm.NewVec4(1, 2, 3, 4)

	fmt.Print("v3: ")
	v1.Add(vm.NewVec4(1, 1, 1, 1)).Print(os.Stdout)
	fmt.Print("v4: ")
	v1.Sub(vm.NewVec4(0.5, 0.5, 0.5, 0.5)).Print(os.Stdout)
	fmt.Print("v5: ")
	v1.ScalarMul(2).Print(os.Stdout)
	fmt.Println("Magnitude of v1:", v1.Magnitude())
	fmt.Print("v6 (normalized): ")
	v1.Normalize().Print(os.Stdout)
	printData(v1.Data())
}

func main() {
	demoVec2()
	fmt.Println()
	demoVec3()
	fmt.Println()
	demoVec4()
}
