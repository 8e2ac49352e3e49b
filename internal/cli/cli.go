package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/petaline/storefront/internal/domain/model"
	"github.com/petaline/storefront/internal/usecase"
	"github.com/petaline/storefront/internal/worker"
)

// Storefront is the subset of application functionality the CLI drives.
type Storefront interface {
	Products(ctx context.Context, category model.Category, key model.SortKey) ([]model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	AddToCart(ctx context.Context, productID int64, qty int) error
	SetCartQuantity(ctx context.Context, productID int64, qty int) error
	RemoveFromCart(ctx context.Context, productID int64) error
	Cart(ctx context.Context) (*model.CartSnapshot, error)
	Checkout(ctx context.Context) error
	SubmitOrder(ctx context.Context, delivery model.DeliveryDetails) (*model.Order, error)
	MyOrders(ctx context.Context) ([]model.Order, error)
	DeleteMyOrder(ctx context.Context, orderID int64) error
	AllOrders(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus, reason string) error
	Register(ctx context.Context, in usecase.RegisterInput) (*model.User, error)
	Login(ctx context.Context, login, password string) (*model.User, error)
	Logout()
	CurrentUser() *model.User
}

// Loop is the line-oriented storefront front end. It is presentation glue:
// all rules live behind the Storefront boundary and every error it prints
// comes back from there.
type Loop struct {
	store    Storefront
	redirect *worker.ConfirmRedirect
	logger   *slog.Logger
	in       io.Reader
	out      io.Writer
}

// NewLoop constructs the CLI loop.
func NewLoop(store Storefront, redirect *worker.ConfirmRedirect, logger *slog.Logger, in io.Reader, out io.Writer) *Loop {
	return &Loop{store: store, redirect: redirect, logger: logger, in: in, out: out}
}

// Run reads commands until ctx ends or input is exhausted.
func (l *Loop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(l.in)
	l.logger.Info("storefront cli started")
	fmt.Fprintln(l.out, `Flower shop. Type "help" for commands.`)

	for {
		fmt.Fprint(l.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// Any command issued while the confirmation redirect is pending
		// counts as navigating away.
		l.redirect.Cancel()

		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := l.dispatch(ctx, scanner, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(l.out, "error: %v\n", err)
		}
	}
}

func (l *Loop) dispatch(ctx context.Context, scanner *bufio.Scanner, cmd string, args []string) error {
	switch cmd {
	case "help":
		l.printHelp()
		return nil
	case "products":
		return l.listProducts(ctx, args)
	case "product":
		return l.showProduct(ctx, args)
	case "add":
		return l.addToCart(ctx, args)
	case "cart":
		return l.showCart(ctx)
	case "set":
		return l.setQuantity(ctx, args)
	case "remove":
		return l.removeFromCart(ctx, args)
	case "checkout":
		return l.checkout(ctx, scanner)
	case "orders":
		return l.listMyOrders(ctx)
	case "delete":
		return l.deleteOrder(ctx, args)
	case "admin":
		return l.listAllOrders(ctx, args)
	case "status":
		return l.setStatus(ctx, args)
	case "register":
		return l.register(ctx, scanner)
	case "login":
		return l.login(ctx, scanner)
	case "logout":
		l.store.Logout()
		fmt.Fprintln(l.out, "logged out")
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (l *Loop) printHelp() {
	fmt.Fprintln(l.out, `commands:
  products [category] [sort]   list catalog (sort: new name country price_asc price_desc)
  product <id>                 show product details
  add <id> [qty]               add product to cart
  cart                         show cart
  set <id> <qty>               change cart quantity (0 removes)
  remove <id>                  remove product from cart
  checkout                     validate cart and place an order
  orders                       my orders
  delete <id>                  delete my order while it is new
  admin [status]               all orders (admin)
  status <id> <status> [why]   change order status (admin)
  register | login | logout    account
  quit`)
}

func (l *Loop) listProducts(ctx context.Context, args []string) error {
	var category model.Category
	key := model.SortNew
	for _, arg := range args {
		if c := model.Category(arg); c.Valid() {
			category = c
			continue
		}
		key = model.SortKey(arg)
	}

	products, err := l.store.Products(ctx, category, key)
	if err != nil {
		return err
	}
	for _, p := range products {
		marker := " "
		if p.IsNew {
			marker = "*"
		}
		fmt.Fprintf(l.out, "%s %3d  %-28s %8s  in stock: %d\n", marker, p.ID, p.Name, p.Price, p.InStock)
	}
	return nil
}

func (l *Loop) showProduct(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	p, err := l.store.Product(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "%s\n%s\nprice: %s  category: %s  country: %s  color: %s  in stock: %d\n",
		p.Name, p.Description, p.Price, p.Category, p.Country, p.Color, p.InStock)
	return nil
}

func (l *Loop) addToCart(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	qty := 1
	if len(args) > 1 {
		if qty, err = strconv.Atoi(args[1]); err != nil {
			return fmt.Errorf("bad quantity %q", args[1])
		}
	}
	if err := l.store.AddToCart(ctx, id, qty); err != nil {
		return err
	}
	fmt.Fprintln(l.out, "added")
	return nil
}

func (l *Loop) showCart(ctx context.Context) error {
	snapshot, err := l.store.Cart(ctx)
	if err != nil {
		return err
	}
	if len(snapshot.Lines) == 0 {
		fmt.Fprintln(l.out, "cart is empty")
		return nil
	}
	for _, line := range snapshot.Lines {
		fmt.Fprintf(l.out, "%3d  %-28s x%-3d %8s\n", line.Product.ID, line.Product.Name, line.Quantity, line.Subtotal)
	}
	fmt.Fprintf(l.out, "total: %s\n", snapshot.Total)
	return nil
}

func (l *Loop) setQuantity(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: set <id> <qty>")
	}
	qty, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad quantity %q", args[1])
	}
	return l.store.SetCartQuantity(ctx, id, qty)
}

func (l *Loop) removeFromCart(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	return l.store.RemoveFromCart(ctx, id)
}

func (l *Loop) checkout(ctx context.Context, scanner *bufio.Scanner) error {
	if err := l.store.Checkout(ctx); err != nil {
		return err
	}

	delivery := model.DeliveryDetails{}
	if user := l.store.CurrentUser(); user != nil {
		delivery.RecipientName = user.Name
		delivery.Phone = user.Phone
	}
	delivery.RecipientName = l.promptDefault(scanner, "recipient name", delivery.RecipientName)
	delivery.Phone = l.promptDefault(scanner, "phone (+7(XXX)-XXX-XX-XX)", delivery.Phone)
	delivery.Address = l.prompt(scanner, "address")
	delivery.DeliveryDate = l.prompt(scanner, "delivery date (YYYY-MM-DD)")
	delivery.DeliveryTime = l.prompt(scanner, "delivery time (HH:MM)")
	delivery.Payment = model.PaymentMethod(l.promptDefault(scanner, "payment (cash|card)", string(model.PaymentCard)))

	order, err := l.store.SubmitOrder(ctx, delivery)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "order %d placed, total %s\n", order.ID, order.Total)
	l.redirect.Schedule(ctx, func() {
		fmt.Fprintln(l.out, "\nback to the catalog:")
		_ = l.listProducts(ctx, nil)
	})
	return nil
}

func (l *Loop) listMyOrders(ctx context.Context) error {
	orders, err := l.store.MyOrders(ctx)
	if err != nil {
		return err
	}
	l.printOrders(orders)
	return nil
}

func (l *Loop) deleteOrder(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	if err := l.store.DeleteMyOrder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(l.out, "order deleted")
	return nil
}

func (l *Loop) listAllOrders(ctx context.Context, args []string) error {
	var status model.OrderStatus
	if len(args) > 0 {
		status = model.OrderStatus(args[0])
		if !status.Valid() {
			return fmt.Errorf("unknown status %q", args[0])
		}
	}
	orders, err := l.store.AllOrders(ctx, status)
	if err != nil {
		return err
	}
	l.printOrders(orders)
	return nil
}

func (l *Loop) setStatus(ctx context.Context, args []string) error {
	id, err := parseID(args, 0)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("usage: status <id> <status> [reason]")
	}
	reason := strings.Join(args[2:], " ")
	return l.store.SetOrderStatus(ctx, id, model.OrderStatus(args[1]), reason)
}

func (l *Loop) register(ctx context.Context, scanner *bufio.Scanner) error {
	in := usecase.RegisterInput{
		Login:    l.prompt(scanner, "login"),
		Password: l.prompt(scanner, "password"),
		Name:     l.prompt(scanner, "full name"),
		Phone:    l.prompt(scanner, "phone (+7(XXX)-XXX-XX-XX)"),
		Email:    l.prompt(scanner, "email"),
	}
	user, err := l.store.Register(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "welcome, %s\n", user.Name)
	return nil
}

func (l *Loop) login(ctx context.Context, scanner *bufio.Scanner) error {
	login := l.prompt(scanner, "login")
	password := l.prompt(scanner, "password")
	user, err := l.store.Login(ctx, login, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(l.out, "welcome back, %s\n", user.Name)
	return nil
}

func (l *Loop) printOrders(orders []model.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(l.out, "no orders")
		return
	}
	for _, order := range orders {
		fmt.Fprintf(l.out, "order %d  %s  %s  total %s  status %s",
			order.ID, order.CreatedAt.Format("2006-01-02 15:04"), order.UserLogin, order.Total, order.Status)
		if order.CancelReason != "" {
			fmt.Fprintf(l.out, "  (%s)", order.CancelReason)
		}
		fmt.Fprintln(l.out)
		for _, line := range order.Lines {
			fmt.Fprintf(l.out, "    product %d x%d @ %s\n", line.ProductID, line.Quantity, line.UnitPrice)
		}
	}
}

func (l *Loop) prompt(scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(l.out, "%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (l *Loop) promptDefault(scanner *bufio.Scanner, label, def string) string {
	if def != "" {
		fmt.Fprintf(l.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(l.out, "%s: ", label)
	}
	if !scanner.Scan() {
		return def
	}
	if text := strings.TrimSpace(scanner.Text()); text != "" {
		return text
	}
	return def
}

func parseID(args []string, pos int) (int64, error) {
	if len(args) <= pos {
		return 0, fmt.Errorf("product or order id required")
	}
	id, err := strconv.ParseInt(args[pos], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad id %q", args[pos])
	}
	return id, nil
}
