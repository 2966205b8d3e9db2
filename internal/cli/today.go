package cli

type TodayCmd struct {
	Date string `short:"d" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *TodayCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	view, err := ctx.Dashboard(date)
	if err != nil {
		return err
	}
	ctx.renderDay(view)
	return nil
}

type WeekCmd struct {
	Date string `short:"d" help:"Any date within the week (YYYY-MM-DD). Defaults to today."`
}

func (c *WeekCmd) Run(ctx *Context) error {
	date, err := ctx.resolveDate(c.Date)
	if err != nil {
		return err
	}
	view, err := ctx.Dashboard(date)
	if err != nil {
		return err
	}
	ctx.renderWeek(view)
	return nil
}
