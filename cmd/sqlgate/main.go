package main

func main() {
	app := NewApp()
	app.Run()
}
