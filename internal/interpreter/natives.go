package interpreter

// natives builds the ZS catalogue. It is the only place operation names
// are bound to behaviour.
func natives() map[string]Callable {
	return map[string]Callable{
		"ZS.Math.Sin":   NativeFunction1(StdFnSin),
		"ZS.Math.Cos":   NativeFunction1(StdFnCos),
		"ZS.Math.Tan":   NativeFunction1(StdFnTan),
		"ZS.Math.Round": NativeFunction1(StdFnRound),
		"ZS.Math.Lerp":  NativeFunction3(StdFnLerp),
		"ZS.Math.Abs":   NativeFunction1(StdFnAbs),

		"ZS.Graphics.Init":     NativeFunction3(StdFnGraphicsInit),
		"ZS.Graphics.Sprite":   nativeN(4, StdFnGraphicsSprite),
		"ZS.Graphics.Draw":     NativeFunction1(StdFnGraphicsDraw),
		"ZS.Graphics.Load":     NativeFunction1(StdFnGraphicsLoad),
		"ZS.Graphics.Text":     nativeN(8, StdFnGraphicsText),
		"ZS.Graphics.DrawText": NativeFunction1(StdFnGraphicsDrawText),
		"ZS.Graphics.LoadText": NativeFunction1(StdFnGraphicsLoadText),

		"ZS.Physics.AxisAlignedCollision": NativeFunction2(StdFnAxisAlignedCollision),

		"ZS.Input.GetKey": NativeFunction1(StdFnGetKey),

		"ZS.System.Print":     NativeFunction1(StdFnPrint),
		"ZS.System.PrintLine": NativeFunction1(StdFnPrintLine),
		"ZS.System.Vec2":      NativeFunction2(StdFnVec2),
	}
}
