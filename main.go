package main

import (
	"flag"
	"log"
	"os"

	"github.com/valyala/fasthttp"
)

var port = flag.String("port", "8080", "port to listen")
var once = flag.Bool("once", false, "print the demo and exit")

func main() {
	log.SetFlags(log.Lmicroseconds | log.Lshortfile)
	flag.Parse()
	LoadValues()

	if *once {
		Demo(os.Stdout)
		return
	}

	err := fasthttp.ListenAndServe(":"+*port, handler)
	if err != nil {
		log.Fatal(err)
	}
}

func handler(ctx *fasthttp.RequestCtx) {
	switch {
	case ctx.IsGet():
		getHandler(ctx)
	default:
		ctx.SetStatusCode(405)
	}
}
