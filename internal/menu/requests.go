package menu

import (
	"context"
	"errors"
	"fmt"

	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/app"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/domain"
	"github.com/jerbao/Sistem-de-Gestao-de-Camarim/internal/presentation"
)

func (m *Menu) requestActions() []action {
	return []action{
		{"Exibir Pedidos", func(ctx context.Context) error { return m.show(ctx, app.DomainRequests) }},
		{"Cadastrar Pedido", m.createRequest},
		{"Remover Pedido", m.deleteRequest},
		{"Adicionar Item", m.addRequestItem},
		{"Remover Item", m.removeRequestItem},
		{"Marcar como Atendido", m.fulfillRequest},
		{"Listar Pendentes", m.listPending},
		{"Buscar por Camarim", m.findRequestsByRoom},
		{"Despachar Pedido", m.dispatchRequest},
	}
}

func (m *Menu) createRequest(ctx context.Context) error {
	m.header("Cadastrar Pedido")
	roomID, err := m.readInt("ID do Camarim: ")
	if err != nil {
		return err
	}
	artist, err := m.readText("Nome do Artista: ")
	if err != nil {
		return err
	}
	id, err := m.app.CreateRequest(ctx, roomID, artist)
	if err != nil {
		return err
	}
	m.ok("Pedido criado com ID: %d", id)
	return nil
}

func (m *Menu) deleteRequest(ctx context.Context) error {
	id, err := m.readInt("Digite o ID do pedido: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRequests, "delete", func() (int, error) {
		if !m.app.Requests.Delete(id) {
			return id, domain.NotFound(domain.EntityRequest, "request %d not found", id)
		}
		return id, nil
	})
	if err != nil {
		return err
	}
	m.ok("Pedido removido com sucesso!")
	return nil
}

func (m *Menu) selectRequest() (int, error) {
	id, err := m.readInt("ID do Pedido: ")
	if err != nil {
		return 0, err
	}
	if _, ok := m.app.Requests.FindByID(id); !ok {
		return 0, domain.NotFound(domain.EntityRequest, "request %d not found", id)
	}
	return id, nil
}

func (m *Menu) addRequestItem(ctx context.Context) error {
	reqID, err := m.selectRequest()
	if err != nil {
		return err
	}
	item, err := m.selectItem("ID do Item (do catálogo): ")
	if err != nil {
		return err
	}
	qty, err := m.readInt("Quantidade: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRequests, "add_item", func() (int, error) {
		return reqID, m.app.Requests.AddItem(reqID, item.ID(), item.Name(), qty)
	})
	if err != nil {
		return err
	}
	m.ok("Item adicionado ao pedido!")
	return nil
}

func (m *Menu) removeRequestItem(ctx context.Context) error {
	reqID, err := m.selectRequest()
	if err != nil {
		return err
	}
	itemID, err := m.readInt("ID do Item: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRequests, "remove_item", func() (int, error) {
		return reqID, m.app.Requests.RemoveItem(reqID, itemID)
	})
	if err != nil {
		return err
	}
	m.ok("Item removido do pedido!")
	return nil
}

func (m *Menu) fulfillRequest(ctx context.Context) error {
	id, err := m.readInt("ID do Pedido: ")
	if err != nil {
		return err
	}
	_, err = m.app.Run(ctx, app.DomainRequests, "fulfill", func() (int, error) {
		return id, m.app.Requests.MarkFulfilled(id)
	})
	if err != nil {
		return err
	}
	m.ok("Pedido marcado como atendido!")
	return nil
}

func (m *Menu) listPending(context.Context) error {
	m.println("")
	m.print(presentation.RequestsText("Pedidos Pendentes", "Nenhum pedido pendente.", m.app.Requests.ListPending()))
	return nil
}

func (m *Menu) findRequestsByRoom(context.Context) error {
	roomID, err := m.readInt("ID do Camarim: ")
	if err != nil {
		return err
	}
	m.println("")
	m.print(presentation.RequestsText(
		fmt.Sprintf("Pedidos do Camarim %d", roomID),
		"Nenhum pedido encontrado para este camarim.",
		m.app.Requests.FindByDressingRoom(roomID),
	))
	return nil
}

func (m *Menu) dispatchRequest(ctx context.Context) error {
	id, err := m.readInt("ID do Pedido: ")
	if err != nil {
		return err
	}
	err = m.app.DispatchRequest(ctx, id)
	var short *domain.InsufficientQuantityError
	if errors.As(err, &short) {
		m.warn("Estoque insuficiente para o item %d: disponível %d, pedido %d",
			short.ItemID, short.Available, short.Requested)
		m.println("Dica: gere uma lista de reposição (Menu Lista de Compras).")
		return nil
	}
	if err != nil {
		return err
	}
	m.ok("Pedido despachado: itens movidos do estoque para o camarim!")
	return nil
}
