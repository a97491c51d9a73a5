package main

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"

	"github.com/sharkee26/lab4-prog/alloc"
	"github.com/sharkee26/lab4-prog/omap"
)

var config = jsoniter.Config{
	CaseSensitive: true,
}.Froze()

func getHandler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/factorials":
		doFactorials(ctx)
	case "/values":
		doValues(ctx)
	case "/metrics":
		doMetrics(ctx)
	default:
		ctx.SetStatusCode(404)
	}
}

// 20! is the largest factorial that fits an int64
const maxFactorial = 20

func doFactorials(ctx *fasthttp.RequestCtx) {
	n := 10
	if arg := ctx.QueryArgs().Peek("n"); len(arg) > 0 {
		var err error
		n, err = strconv.Atoi(string(arg))
		if err != nil || n < 0 || n > maxFactorial {
			ctx.SetStatusCode(400)
			return
		}
	}

	arena := alloc.New[omap.Entry[int, int64]](alloc.DefaultBlockSize)
	defer arena.Close()
	m := omap.New(arena)
	fillFactorials(n, m.Set)

	stream := config.BorrowStream(nil)
	defer config.ReturnStream(stream)
	stream.Write([]byte(`{"factorials":[`))
	first := true
	m.Each(func(k int, v int64) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.Write([]byte(`{"n":`))
		stream.WriteInt(k)
		stream.Write([]byte(`,"value":`))
		stream.WriteInt64(v)
		stream.Write([]byte(`}`))
		return true
	})
	stream.Write([]byte(`],"arena":`))
	stream.WriteVal(arena.Metrics())
	stream.Write([]byte(`}`))

	ctx.SetContentType("application/json")
	ctx.Write(stream.Buffer())
	m.Close()
}

func doValues(ctx *fasthttp.RequestCtx) {
	stream := config.BorrowStream(nil)
	defer config.ReturnStream(stream)
	stream.WriteArrayStart()
	first := true
	values.Each(func(p *int32) bool {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteInt32(*p)
		return true
	})
	stream.WriteArrayEnd()

	ctx.SetContentType("application/json")
	ctx.Write(stream.Buffer())
}

func doMetrics(ctx *fasthttp.RequestCtx) {
	data, err := config.Marshal(valuesArena.Metrics())
	if err != nil {
		ctx.SetStatusCode(500)
		return
	}
	ctx.SetContentType("application/json")
	ctx.Write(data)
}
