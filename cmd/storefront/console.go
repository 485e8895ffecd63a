package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront/internal/domain"
	"storefront/internal/port"
	"storefront/internal/tax"
)

// console is a line-oriented presentation layer over the core managers. It
// passes raw user-entered strings through; all validation is the core's job.
type console struct {
	users   port.UserStore
	catalog port.Catalog
	ledger  port.OrderLedger

	user domain.User
	cart *domain.Cart
}

func (c *console) run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, `storefront console: type "help" for commands`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return nil
		}

		if err := c.dispatch(out, cmd, args); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
}

func (c *console) dispatch(out io.Writer, cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Fprint(out, `commands:
  login <user> <password>    products               search <query>
  add <productID> [qty]      remove <productID>     cart
  checkout <state> <addr..>  orders                 revenue
  status <orderID> <status>  review <productID> <text..>
  states                     quit
`)
		return nil

	case "login":
		if len(args) != 2 {
			return domain.InvalidInputf("usage: login <user> <password>")
		}
		user, err := c.users.Login(args[0], args[1])
		if err != nil {
			return err
		}
		c.user = user
		c.cart = domain.NewCart(user.ID)
		logger.Info("user logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
		fmt.Fprintf(out, "welcome, %s (%s)\n", user.Username, user.Role)
		return nil

	case "products":
		for _, p := range c.catalog.SortedByPrice() {
			fmt.Fprintf(out, "%-6s %-16s %-12s %10s  stock %d\n", p.ID, p.Name, p.Category, p.Price, p.Quantity)
		}
		return nil

	case "search":
		for _, p := range c.catalog.SearchByName(strings.Join(args, " ")) {
			fmt.Fprintf(out, "%-6s %-16s %10s  stock %d\n", p.ID, p.Name, p.Price, p.Quantity)
		}
		return nil

	case "add":
		if c.cart == nil {
			return domain.AuthFailedf("log in first")
		}
		if len(args) < 1 {
			return domain.InvalidInputf("usage: add <productID> [qty]")
		}
		qty := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return domain.InvalidInputf("quantity must be a valid integer")
			}
			qty = n
		}
		p, err := c.catalog.Get(args[0])
		if err != nil {
			return err
		}
		c.cart.AddItem(p.ID, qty)
		fmt.Fprintf(out, "added %d x %s\n", qty, p.Name)
		return nil

	case "remove":
		if c.cart == nil {
			return domain.AuthFailedf("log in first")
		}
		if len(args) != 1 {
			return domain.InvalidInputf("usage: remove <productID>")
		}
		c.cart.RemoveItem(args[0])
		return nil

	case "cart":
		if c.cart == nil {
			return domain.AuthFailedf("log in first")
		}
		subtotal, err := c.subtotal()
		if err != nil {
			return err
		}
		for _, item := range c.cart.Items() {
			fmt.Fprintf(out, "%-6s x %d\n", item.ProductID, item.Quantity)
		}
		fmt.Fprintf(out, "subtotal: %s\n", subtotal)
		return nil

	case "checkout":
		if c.cart == nil {
			return domain.AuthFailedf("log in first")
		}
		if len(args) < 2 {
			return domain.InvalidInputf("usage: checkout <state> <address...>")
		}
		state, address := args[0], strings.Join(args[1:], " ")

		subtotal, err := c.subtotal()
		if err != nil {
			return err
		}
		taxAmount, total, err := c.ledger.CalculateTotals(subtotal, state)
		if err != nil {
			return err
		}
		order, err := c.ledger.PlaceOrder(c.cart, subtotal, taxAmount, total, address, state)
		if err != nil {
			return err
		}
		c.cart.Clear()

		logger.Info("order placed",
			zap.String("order_id", order.ID),
			zap.String("customer_id", order.CustomerID),
			zap.String("state", order.StateCode),
			zap.String("total", order.Total.String()))
		fmt.Fprintf(out, "order %s placed: %s tax, %s total (%s)\n",
			order.ID, order.Tax, order.Total, tax.StateName(state))
		return nil

	case "orders":
		if c.user.ID == "" {
			return domain.AuthFailedf("log in first")
		}
		orders := c.ledger.OrdersByCustomer(c.user.ID)
		if c.user.Role == domain.RoleAdmin {
			orders = c.ledger.AllOrders()
		}
		for _, o := range orders {
			fmt.Fprintf(out, "%s  %-10s %10s  %s\n", o.ID, o.Status, o.Total, o.PlacedAt.Format("2006-01-02 15:04"))
		}
		return nil

	case "revenue":
		name, ok := c.ledger.MostOrderedProduct()
		if !ok {
			name = "n/a"
		}
		fmt.Fprintf(out, "orders: %d  revenue: %s  top product: %s\n",
			c.ledger.TotalOrdersPlaced(), c.ledger.TotalRevenue(), name)
		return nil

	case "status":
		if c.user.Role != domain.RoleAdmin {
			return domain.AuthFailedf("only admins can update order status")
		}
		if len(args) != 2 {
			return domain.InvalidInputf("usage: status <orderID> <Placed|Shipped|Delivered>")
		}
		return c.ledger.UpdateStatus(args[0], domain.OrderStatus(args[1]))

	case "review":
		if c.user.ID == "" {
			return domain.AuthFailedf("log in first")
		}
		if len(args) < 2 {
			return domain.InvalidInputf("usage: review <productID> <text...>")
		}
		return c.catalog.AddReview(args[0], c.user.Username, strings.Join(args[1:], " "))

	case "states":
		for _, code := range tax.Codes() {
			fmt.Fprintf(out, "%s - %s\n", code, tax.StateName(code))
		}
		return nil

	default:
		return domain.InvalidInputf("unknown command %q", cmd)
	}
}

// subtotal resolves cart lines against the live catalog; prices are never
// cached in the cart.
func (c *console) subtotal() (domain.Money, error) {
	total := domain.USD(decimal.Zero)
	for _, item := range c.cart.Items() {
		p, err := c.catalog.Get(item.ProductID)
		if err != nil {
			return domain.Money{}, err
		}

		total, err = total.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		if err != nil {
			return domain.Money{}, err
		}
	}
	return total, nil
}
